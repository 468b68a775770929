package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/fractile/internal/engine/explorer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultFrameInterval is the delay before the next frame while tiles are
// still being refined.
const DefaultFrameInterval = 10 * time.Millisecond

// RenderOptions configures a single render.
type RenderOptions struct {
	ViewOptions
	// Output overrides the configured output path.
	Output string
	// Format overrides the output format. Empty means infer from Output.
	Format string
	// FramesDir receives every distinct intermediate frame when set.
	FramesDir string
	// Timeout bounds the time spent waiting for tiles. Zero waits forever.
	Timeout  time.Duration
	Annotate bool
}

func (o RenderOptions) applyOutput(cfg *domain.Config) error {
	if o.Output != "" {
		cfg.Output.Path = o.Output
	}
	format, err := outputFormat(o.Output, o.Format, cfg.Output.Format)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	if o.Annotate {
		cfg.Output.Annotate = true
	}
	return nil
}

// Render loads the configuration, replays its script, drives frames until
// every visible tile is final and exports the composited image.
func (a *App) Render(ctx context.Context, opts RenderOptions) (*domain.RenderSummary, error) {
	cfg, err := a.loadConfig(opts.ViewOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.applyOutput(cfg); err != nil {
		return nil, err
	}

	summary, err := a.render(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("wrote %s (%dx%d, %d frames", summary.Output, summary.Width, summary.Height, summary.Frames)
	if summary.Dumped > 0 {
		msg += fmt.Sprintf(", %d dumped", summary.Dumped)
	}
	a.logger.Info(msg + ")")
	return summary, nil
}

type snapshot struct {
	index int
	img   *image.RGBA
}

func (a *App) render(ctx context.Context, cfg *domain.Config, opts RenderOptions) (_ *domain.RenderSummary, err error) {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "render "+filepath.Base(cfg.Output.Path), ports.AsRoot())
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()
	span.SetAttribute("width", cfg.Viewport.Width)
	span.SetAttribute("height", cfg.Viewport.Height)
	span.SetAttribute("workers", cfg.Workers)

	eval, pal, err := a.field(cfg)
	if err != nil {
		return nil, err
	}

	wake := make(chan struct{}, 1)
	ex := explorer.New(cfg.InitialViewport(), explorer.Options{
		Tiles:     cfg.Tiles,
		Workers:   cfg.Workers,
		Evaluator: eval,
		Palette:   pal,
		RequestFrame: func() {
			select {
			case wake <- struct{}{}:
			default:
			}
		},
	})
	poolCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ex.Start(poolCtx)
	defer ex.Close()

	d := &driver{
		ex:         ex,
		compositor: a.compositor,
		tracer:     a.tracer,
		wake:       wake,
		interval:   a.interval,
		width:      cfg.Viewport.Width,
		height:     cfg.Viewport.Height,
	}

	g, gctx := errgroup.WithContext(ctx)
	if opts.FramesDir != "" {
		snapshots := make(chan snapshot, 4)
		d.snapshots = snapshots
		g.Go(func() error {
			return a.dumpFrames(opts.FramesDir, cfg.Output.Format, snapshots)
		})
	}
	g.Go(func() error {
		if d.snapshots != nil {
			defer close(d.snapshots)
		}
		if err := d.script(gctx, cfg.Script); err != nil {
			return err
		}
		return d.settle(gctx, opts.Timeout)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	img := d.compositor.Compose(d.img, d.last)
	digest := xxhash.Sum64(img.Pix)
	if cfg.Output.Annotate {
		a.compositor.Annotate(img, []string{
			describeView(ex.Viewport()),
			fmt.Sprintf("%dx%d %s, %d frames", d.width, d.height, pal.Name(), d.frames),
		})
	}

	if err := a.export(ctx, cfg.Output, img); err != nil {
		return nil, err
	}

	return &domain.RenderSummary{
		Width:     d.width,
		Height:    d.height,
		Frames:    d.frames,
		Complete:  true,
		Digest:    digest,
		Output:    cfg.Output.Path,
		Dumped:    d.dumped,
		Allocated: ex.Stats().Allocated,
		Duration:  time.Since(start),
	}, nil
}

func (a *App) export(ctx context.Context, out domain.OutputConfig, img image.Image) error {
	_, span := a.tracer.Start(ctx, "export")
	defer span.End()
	span.SetAttribute("format", out.Format)
	if err := a.exporter.Export(out.Path, out.Format, img); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) dumpFrames(dir, format string, snapshots <-chan snapshot) error {
	for s := range snapshots {
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.%s", s.index, format))
		if err := a.exporter.Export(path, format, s.img); err != nil {
			return zerr.With(err, "frame", s.index)
		}
		a.logger.Debug("wrote " + path)
	}
	return nil
}

// driver runs the frame loop of one render. Only its goroutine touches the
// explorer until the loop returns.
type driver struct {
	ex         *explorer.Explorer
	compositor ports.Compositor
	tracer     ports.Tracer
	wake       <-chan struct{}
	interval   time.Duration
	width      int
	height     int

	snapshots chan snapshot
	img       *image.RGBA
	last      *domain.Frame
	frames    int
	digest    uint64
	dumped    int
}

// script replays the configured steps, drawing one frame after each.
func (d *driver) script(ctx context.Context, steps []domain.Step) error {
	if len(steps) == 0 {
		return nil
	}
	ctx, span := d.tracer.Start(ctx, "script")
	defer span.End()
	span.SetAttribute("steps", len(steps))

	for _, s := range steps {
		switch s.Kind {
		case domain.StepPan:
			d.ex.Pan(s.DX, s.DY)
		case domain.StepZoom:
			d.ex.Zoom(s.Factor(), d.width, d.height)
		}
		if err := d.frame(ctx); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

// settle draws frames until one is complete.
func (d *driver) settle(ctx context.Context, timeout time.Duration) error {
	ctx, span := d.tracer.Start(ctx, "settle")
	defer span.End()

	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		if err := d.frame(ctx); err != nil {
			span.RecordError(err)
			return err
		}
		if d.last.Complete {
			span.SetAttribute("frames", d.frames)
			return nil
		}
		if err := d.wait(ctx, deadline); err != nil {
			if errors.Is(err, errDeadline) {
				err = zerr.With(zerr.With(domain.ErrRenderIncomplete, "timeout", timeout.String()), "frames", d.frames)
			}
			span.RecordError(err)
			return err
		}
	}
}

var errDeadline = zerr.New("deadline reached")

// wait blocks until the explorer asks for a frame and the frame interval has
// passed.
func (d *driver) wait(ctx context.Context, deadline <-chan time.Time) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-deadline:
		return errDeadline
	case <-d.wake:
	}

	timer := time.NewTimer(d.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-deadline:
		return errDeadline
	case <-timer.C:
		return nil
	}
}

// frame draws one frame and hands it to the frame dumper when its pixels
// changed.
func (d *driver) frame(ctx context.Context) error {
	d.last = d.ex.Frame(d.width, d.height)
	d.frames++
	if d.snapshots == nil {
		return nil
	}

	d.img = d.compositor.Compose(d.img, d.last)
	digest := xxhash.Sum64(d.img.Pix)
	if d.dumped > 0 && digest == d.digest {
		return nil
	}
	d.digest = digest

	clone := image.NewRGBA(d.img.Rect)
	copy(clone.Pix, d.img.Pix)
	select {
	case d.snapshots <- snapshot{index: d.dumped, img: clone}:
		d.dumped++
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
