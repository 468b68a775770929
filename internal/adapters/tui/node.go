package tui

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/core/ports"
)

// NodeID is the graft node for the interactive viewer.
const NodeID graft.ID = "adapter.viewer"

func init() {
	graft.Register(graft.Node[ports.Viewer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Viewer, error) {
			return NewViewer(nil, nil), nil
		},
	})
}
