package escape

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/core/ports"
)

// NodeID is the graft node for the evaluator factory.
const NodeID graft.ID = "adapter.evaluator"

func init() {
	graft.Register(graft.Node[ports.EvaluatorFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EvaluatorFactory, error) {
			return Factory{}, nil
		},
	})
}
