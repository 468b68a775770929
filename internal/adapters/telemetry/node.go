package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/adapters/linear"
	"go.trai.ch/fractile/internal/core/ports"
)

const (
	// ProviderNodeID is the graft node for the tracer provider.
	ProviderNodeID graft.ID = "adapter.telemetry_provider"
	// TracerNodeID is the graft node for the tracer.
	TracerNodeID graft.ID = "adapter.telemetry"
)

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{linear.NodeID},
		Run: func(ctx context.Context) (*Provider, error) {
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(reporter), nil
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ProviderNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			provider, err := graft.Dep[*Provider](ctx)
			if err != nil {
				return nil, err
			}
			return provider.Tracer(), nil
		},
	})
}
