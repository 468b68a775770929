// Package config loads fractile.yaml into a domain.Config.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader on YAML files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader returns a loader reading from the real filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, OSFS{})
}

// NewLoaderWithFS returns a loader reading through fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Discover walks up from cwd and returns the first fractile.yaml found.
func (l *Loader) Discover(cwd string) (string, error) {
	dir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		dir = parent
	}
}

// Load reads the file at path and overlays it on domain.DefaultConfig.
// Relative output paths are resolved against the file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	raw, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if doc.Version != "" && doc.Version != domain.ConfigVersion {
		return nil, zerr.With(domain.ErrUnsupportedConfigVersion, "version", doc.Version)
	}
	if doc.Version == "" {
		l.Logger.Warn(fmt.Sprintf("%s has no version, assuming %q", path, domain.ConfigVersion))
	}

	cfg, err := doc.apply(domain.DefaultConfig())
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	cfg.Path = path
	if !filepath.IsAbs(cfg.Output.Path) {
		cfg.Output.Path = filepath.Join(filepath.Dir(path), cfg.Output.Path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// apply copies every field set in the document onto cfg.
func (d *Document) apply(cfg *domain.Config) (*domain.Config, error) {
	if o := d.Viewport.Origin; o != nil {
		if len(o) != 2 {
			return nil, zerr.With(domain.ErrConfigParseFailed, "origin", o)
		}
		cfg.Viewport.Origin = complex(o[0], o[1])
	}
	setNonZero(&cfg.Viewport.Scale, d.Viewport.Scale)
	setNonZero(&cfg.Viewport.Width, d.Viewport.Width)
	setNonZero(&cfg.Viewport.Height, d.Viewport.Height)

	setNonZero(&cfg.Tiles.Edge, d.Tiles.Edge)
	if d.Tiles.Divisors != nil {
		cfg.Tiles.Divisors = d.Tiles.Divisors
	}
	setNonZero(&cfg.Tiles.EvictionFactor, d.Tiles.EvictionFactor)
	setNonZero(&cfg.Tiles.Overview, d.Tiles.Overview)
	setNonZero(&cfg.Tiles.MaxTiles, d.Tiles.MaxTiles)

	setNonZero(&cfg.Workers, d.Workers)
	setNonZero(&cfg.Evaluator.MaxIterations, d.Evaluator.MaxIterations)
	setNonZero(&cfg.Evaluator.Bands, d.Evaluator.Bands)
	setNonZero(&cfg.Palette, d.Palette)

	setNonZero(&cfg.Output.Path, d.Output.Path)
	if d.Output.Format != "" {
		format, err := domain.NormalizeFormat(d.Output.Format)
		if err != nil {
			return nil, err
		}
		cfg.Output.Format = format
	}
	cfg.Output.Annotate = d.Output.Annotate

	steps, err := buildScript(d.Script)
	if err != nil {
		return nil, err
	}
	cfg.Script = steps
	return cfg, nil
}

func buildScript(dtos []StepDTO) ([]domain.Step, error) {
	if len(dtos) == 0 {
		return nil, nil
	}
	steps := make([]domain.Step, 0, len(dtos))
	for i, s := range dtos {
		switch {
		case s.Pan != nil && s.Zoom == nil && len(s.Pan) == 2:
			steps = append(steps, domain.Step{Kind: domain.StepPan, DX: s.Pan[0], DY: s.Pan[1]})
		case s.Pan == nil && s.Zoom != nil:
			steps = append(steps, domain.Step{Kind: domain.StepZoom, Zoom: *s.Zoom})
		default:
			return nil, zerr.With(domain.ErrInvalidScriptStep, "step", i)
		}
	}
	return steps, nil
}

func setNonZero[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
