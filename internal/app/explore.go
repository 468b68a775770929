package app

import (
	"context"
	"fmt"
	"image"
	"math"

	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/fractile/internal/engine/explorer"
)

// Explore opens the interactive viewer on the configured view.
func (a *App) Explore(ctx context.Context, opts ViewOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}
	eval, pal, err := a.field(cfg)
	if err != nil {
		return err
	}

	ex := explorer.New(cfg.InitialViewport(), explorer.Options{
		Tiles:     cfg.Tiles,
		Workers:   cfg.Workers,
		Evaluator: eval,
		Palette:   pal,
	})
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ex.Start(ctx)
	defer ex.Close()

	a.logger.Debug(fmt.Sprintf("exploring with %d workers", ex.Workers()))
	return a.viewer.Run(ctx, NewScene(ex, a.compositor, pal.Name()))
}

var _ ports.Scene = (*Scene)(nil)

// Scene adapts an explorer to the interactive viewer. Like the explorer it
// must be driven from a single goroutine.
type Scene struct {
	ex         *explorer.Explorer
	compositor ports.Compositor
	initial    domain.Viewport
	palette    string
	img        *image.RGBA
}

// NewScene returns a scene over ex. Reset returns to the view ex has now.
func NewScene(ex *explorer.Explorer, compositor ports.Compositor, palette string) *Scene {
	return &Scene{
		ex:         ex,
		compositor: compositor,
		initial:    ex.Viewport(),
		palette:    palette,
	}
}

// Pan moves the view by (dx, dy) screen pixels.
func (s *Scene) Pan(dx, dy int) {
	s.ex.Pan(dx, dy)
}

// Zoom scales the view by domain.ZoomBase^steps around the screen center.
func (s *Scene) Zoom(steps float64, width, height int) {
	s.ex.Zoom(math.Pow(domain.ZoomBase, steps), width, height)
}

// Reset returns to the initial view.
func (s *Scene) Reset() {
	s.ex.SetViewport(s.initial)
}

// Render composites the current frame into a reused image.
func (s *Scene) Render(width, height int) (*image.RGBA, bool) {
	frame := s.ex.Frame(width, height)
	s.img = s.compositor.Compose(s.img, frame)
	return s.img, frame.Complete
}

// Status describes the view and the engine state.
func (s *Scene) Status() string {
	st := s.ex.Stats()
	return fmt.Sprintf("%s  %s  tiles %d/%d  queued %d",
		describeView(s.ex.Viewport()), s.palette, st.Cached, st.Allocated, st.Pending)
}
