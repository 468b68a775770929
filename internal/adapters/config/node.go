package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/adapters/logger"
	"go.trai.ch/fractile/internal/core/ports"
)

// NodeID is the graft node for the config loader.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
