// Package explorer drives frames over the tile engine: it schedules visible
// tiles, preempts less urgent work, retires tiles that scrolled away and
// keeps a synchronous overview for instant feedback.
package explorer

import (
	"context"
	"image"

	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/fractile/internal/engine/scheduler"
	"go.trai.ch/fractile/internal/engine/tiles"
)

// Options configures an Explorer.
type Options struct {
	Tiles     domain.TileConfig
	Workers   int
	Evaluator ports.Evaluator
	Palette   ports.Palette
	// RequestFrame is called at the end of a frame that left work unfinished.
	RequestFrame func()
}

// Stats is a snapshot of the engine state.
type Stats struct {
	Frames    int
	Zooms     int
	Cached    int
	Pooled    int
	Allocated int
	Pending   int
	Pool      scheduler.Stats
}

type overviewKey struct {
	view          domain.Viewport
	width, height int
}

// Explorer owns the cache, the eviction tracker and the worker pool.
// Everything except Close must be called from one goroutine.
type Explorer struct {
	opts    Options
	view    domain.Viewport
	cache   *tiles.Cache
	tracker *tiles.Tracker
	pool    *scheduler.Pool

	overview      *tiles.Tile
	overviewKey   overviewKey
	overviewValid bool

	visible []domain.Address
	frames  int
	zooms   int
}

// New builds an explorer looking at view. Call Start before the first frame
// to get tiles filled in the background.
func New(view domain.Viewport, opts Options) *Explorer {
	overviewSpec := tiles.Spec{
		Edge:      opts.Tiles.Overview,
		Divisors:  []int{1},
		Evaluator: opts.Evaluator,
		Palette:   opts.Palette,
	}
	return &Explorer{
		opts:     opts,
		view:     view,
		cache:    tiles.NewCache(tiles.NewSpec(opts.Tiles, opts.Evaluator, opts.Palette), opts.Tiles.MaxTiles),
		tracker:  tiles.NewTracker(),
		pool:     scheduler.NewPool(opts.Workers),
		overview: tiles.NewTile(overviewSpec, image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
}

// Start launches the worker pool.
func (e *Explorer) Start(ctx context.Context) {
	e.pool.Start(ctx)
}

// Close retires every tile and stops the workers.
func (e *Explorer) Close() {
	e.cache.InvalidateAll()
	e.pool.Shutdown()
}

// Viewport returns the current view.
func (e *Explorer) Viewport() domain.Viewport {
	return e.view
}

// Workers returns the size of the worker pool.
func (e *Explorer) Workers() int {
	return e.pool.Workers()
}

// Pan moves the view by (dx, dy) screen pixels. Cached tiles stay valid.
func (e *Explorer) Pan(dx, dy int) {
	e.view = e.view.Pan(dx, dy)
}

// Zoom scales the view by factor around the center of a width x height
// screen and invalidates every cached tile. It returns the number of tiles
// retired.
func (e *Explorer) Zoom(factor float64, width, height int) int {
	e.view = e.view.Zoom(factor, width/2, height/2)
	e.zooms++
	return e.cache.InvalidateAll()
}

// SetViewport jumps to v. The cache is invalidated unless only the pan
// offset changed.
func (e *Explorer) SetViewport(v domain.Viewport) {
	if v.Origin != e.view.Origin || v.Scale != e.view.Scale {
		e.cache.InvalidateAll()
	}
	e.view = v
}

// RenderOverview returns a single low-resolution buffer covering the whole
// screen, computed synchronously. It is recomputed only when the view or
// the screen size changes.
func (e *Explorer) RenderOverview(width, height int) domain.Placement {
	side := max(width, height)
	key := overviewKey{view: e.view, width: width, height: height}
	if !e.overviewValid || key != e.overviewKey {
		extent := e.view.Scale * float64(side)
		e.overview.Reparameterize(domain.Rect{
			Corner: e.view.ScreenToField(0, 0),
			Diag:   complex(extent, extent),
		})
		res := e.overview.Fill()
		for res.Status == domain.StatusLevelCompleted {
			res = e.overview.Fill()
		}
		e.overviewKey, e.overviewValid = key, true
	}
	buf := e.overview.Published()
	return domain.Placement{
		Edge:  side,
		Image: buf.Image,
		Level: buf.Level,
		Final: true,
	}
}

// Frame lays out the visible tiles for a width x height screen and
// schedules the ones that still need work. It never blocks on a fill.
func (e *Explorer) Frame(width, height int) *domain.Frame {
	e.frames++
	edge := e.opts.Tiles.Edge
	frame := &domain.Frame{
		Width:    width,
		Height:   height,
		Overview: e.RenderOverview(width, height),
	}

	e.visible = e.view.AppendVisible(e.visible[:0], width, height, edge)
	frame.Tiles = make([]domain.Placement, 0, len(e.visible))

	complete := true
	var prev *tiles.Tile
	prevPriority := 0
	for _, addr := range e.visible {
		t := e.cache.GetOrCreate(addr, e.view.TileRect(addr, edge))
		if t == nil {
			complete = false
			continue
		}
		e.tracker.Touch(t)

		buf := t.Published()
		frame.Tiles = append(frame.Tiles, t.Placement(buf, e.view.OffsetX, e.view.OffsetY))
		if t.Final(buf) {
			continue
		}
		complete = false
		if !t.TrySchedule() {
			continue
		}

		priority := t.CurrentDetail(buf)
		e.pool.Submit(priority, t)
		if prev != nil && priority > prevPriority {
			prev.Cancel(domain.ReasonPreempted)
		}
		prev, prevPriority = t, priority
		frame.Submitted++
	}

	if e.cache.Len() > e.opts.Tiles.SweepThreshold(width, height) {
		frame.Evicted = e.tracker.Sweep(e.cache)
	}
	e.tracker.Finish()

	frame.Cached = e.cache.Len()
	frame.Complete = complete
	if !complete && e.opts.RequestFrame != nil {
		e.opts.RequestFrame()
	}
	return frame
}

// Stats returns a snapshot of the engine state.
func (e *Explorer) Stats() Stats {
	return Stats{
		Frames:    e.frames,
		Zooms:     e.zooms,
		Cached:    e.cache.Len(),
		Pooled:    e.cache.Pooled(),
		Allocated: e.cache.Allocated(),
		Pending:   e.pool.Pending(),
		Pool:      e.pool.Stats(),
	}
}
