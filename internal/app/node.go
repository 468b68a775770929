package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/adapters/bookmarks" //nolint:depguard // Wired in app layer
	"go.trai.ch/fractile/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fractile/internal/adapters/escape"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fractile/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/fractile/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fractile/internal/adapters/palette"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fractile/internal/adapters/raster"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fractile/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/fractile/internal/adapters/tui"       //nolint:depguard // Wired in app layer
	"go.trai.ch/fractile/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fractile/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			escape.NodeID,
			palette.NodeID,
			raster.CompositorNodeID,
			raster.ExporterNodeID,
			bookmarks.NodeID,
			watcher.NodeID,
			fs.HasherNodeID,
			tui.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	evaluators, err := graft.Dep[ports.EvaluatorFactory](ctx)
	if err != nil {
		return nil, err
	}

	palettes, err := graft.Dep[ports.PaletteRegistry](ctx)
	if err != nil {
		return nil, err
	}

	compositor, err := graft.Dep[ports.Compositor](ctx)
	if err != nil {
		return nil, err
	}

	exporter, err := graft.Dep[ports.Exporter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BookmarkStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	viewer, err := graft.Dep[ports.Viewer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, tracer, evaluators, palettes, compositor, exporter, store, w, hasher, viewer), nil
}
