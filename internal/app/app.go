// Package app implements the application layer for fractile.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	evaluators   ports.EvaluatorFactory
	palettes     ports.PaletteRegistry
	compositor   ports.Compositor
	exporter     ports.Exporter
	bookmarks    ports.BookmarkStore
	watcher      ports.Watcher
	hasher       ports.Hasher
	viewer       ports.Viewer

	root     string
	now      func() time.Time
	interval time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	evaluators ports.EvaluatorFactory,
	palettes ports.PaletteRegistry,
	compositor ports.Compositor,
	exporter ports.Exporter,
	bookmarks ports.BookmarkStore,
	watcher ports.Watcher,
	hasher ports.Hasher,
	viewer ports.Viewer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		tracer:       tracer,
		evaluators:   evaluators,
		palettes:     palettes,
		compositor:   compositor,
		exporter:     exporter,
		bookmarks:    bookmarks,
		watcher:      watcher,
		hasher:       hasher,
		viewer:       viewer,
		now:          time.Now,
		interval:     DefaultFrameInterval,
	}
}

// WithRoot sets the directory configs are discovered from and bookmarks are
// stored under. It defaults to the working directory.
func (a *App) WithRoot(root string) *App {
	a.root = root
	return a
}

// WithClock replaces the clock used to timestamp bookmarks.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithFrameInterval sets the delay between frames while tiles are refined.
func (a *App) WithFrameInterval(d time.Duration) *App {
	a.interval = d
	return a
}

// ConfigureLogging switches the logger between pretty and JSON output and
// toggles debug messages, when the logger supports it.
func (a *App) ConfigureLogging(json, verbose bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(json)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
}

// Palettes lists the registered palette names.
func (a *App) Palettes() []string {
	return a.palettes.Names()
}

func (a *App) rootDir() (string, error) {
	if a.root != "" {
		return a.root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}
	return cwd, nil
}

// configPath returns path, or the discovered config file. An empty result
// means no config file exists and the defaults apply.
func (a *App) configPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	root, err := a.rootDir()
	if err != nil {
		return "", err
	}
	found, err := a.configLoader.Discover(root)
	if err != nil {
		a.logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return "", nil
	}
	return found, nil
}

// loadConfig resolves the configuration and applies command line overrides.
func (a *App) loadConfig(opts ViewOptions) (*domain.Config, error) {
	path, err := a.configPath(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if path != "" {
		cfg, err = a.configLoader.Load(path)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		a.logger.Debug("loaded " + path)
	}

	opts.apply(cfg)

	if opts.Bookmark != "" {
		root, err := a.rootDir()
		if err != nil {
			return nil, err
		}
		b, err := a.bookmarks.Get(root, opts.Bookmark)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, zerr.With(domain.ErrBookmarkNotFound, "name", opts.Bookmark)
		}
		cfg.Viewport.Origin = complex(b.OriginX, b.OriginY)
		cfg.Viewport.Scale = b.Scale
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// field resolves the evaluator and palette named by cfg.
func (a *App) field(cfg *domain.Config) (ports.Evaluator, ports.Palette, error) {
	eval, err := a.evaluators.New(cfg.Evaluator)
	if err != nil {
		return nil, nil, err
	}
	pal, err := a.palettes.Lookup(cfg.Palette)
	if err != nil {
		return nil, nil, err
	}
	return eval, pal, nil
}

// ViewOptions override the configured view.
type ViewOptions struct {
	ConfigPath string
	// Bookmark replaces the configured origin and scale.
	Bookmark string
	Width    int
	Height   int
	Palette  string
	Workers  int
}

func (o ViewOptions) apply(cfg *domain.Config) {
	if o.Width > 0 {
		cfg.Viewport.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Viewport.Height = o.Height
	}
	if o.Palette != "" {
		cfg.Palette = o.Palette
	}
	if o.Workers > 0 {
		cfg.Workers = o.Workers
	}
}

// outputFormat picks the format for path: an explicit format wins, then the
// file extension, then the configured format.
func outputFormat(path, format, configured string) (string, error) {
	if format != "" {
		return domain.NormalizeFormat(format)
	}
	if ext := filepath.Ext(path); ext != "" {
		if f, err := domain.NormalizeFormat(ext); err == nil {
			return f, nil
		}
	}
	return domain.NormalizeFormat(configured)
}

func describeView(v domain.Viewport) string {
	c := v.ScreenToField(0, 0)
	return fmt.Sprintf("origin (%.6g, %.6g) scale %.3g", real(c), imag(c), v.Scale)
}
