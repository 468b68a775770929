package raster

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/core/ports"
)

const (
	// CompositorNodeID is the graft node for the compositor.
	CompositorNodeID graft.ID = "adapter.compositor"
	// ExporterNodeID is the graft node for the image exporter.
	ExporterNodeID graft.ID = "adapter.exporter"
)

func init() {
	graft.Register(graft.Node[ports.Compositor]{
		ID:        CompositorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Compositor, error) {
			return NewCompositor(), nil
		},
	})

	graft.Register(graft.Node[ports.Exporter]{
		ID:        ExporterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Exporter, error) {
			return NewExporter(), nil
		},
	})
}
