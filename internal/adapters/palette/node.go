package palette

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/core/ports"
)

// NodeID is the graft node for the palette registry.
const NodeID graft.ID = "adapter.palette"

func init() {
	graft.Register(graft.Node[ports.PaletteRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PaletteRegistry, error) {
			return NewRegistry(), nil
		},
	})
}
