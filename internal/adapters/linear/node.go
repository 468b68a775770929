package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/core/ports"
)

// NodeID is the graft node for the progress reporter.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return NewReporter(nil), nil
		},
	})
}
