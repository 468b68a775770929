package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/core/ports"
)

// HasherNodeID is the graft node for the file hasher.
const HasherNodeID graft.ID = "adapter.fs.hasher"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
