package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/core/ports"
)

// NodeID is the graft node for the process logger.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
