package domain

import (
	"math"
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ConfigVersion is the only schema version understood by the loader.
	ConfigVersion = "1"

	// ZoomBase is the scale factor applied per zoom step.
	ZoomBase = 1.09

	// FormatPNG selects PNG output.
	FormatPNG = "png"
	// FormatBMP selects BMP output.
	FormatBMP = "bmp"
	// FormatTIFF selects TIFF output.
	FormatTIFF = "tiff"

	// PaletteClassic is the default palette name.
	PaletteClassic = "classic"
)

// Config is the fully resolved render configuration.
type Config struct {
	// Path is the file the config was loaded from. Empty for defaults.
	Path      string
	Viewport  ViewportConfig
	Tiles     TileConfig
	Workers   int
	Evaluator EvaluatorConfig
	Palette   string
	Output    OutputConfig
	Script    []Step
}

// ViewportConfig describes the initial view.
type ViewportConfig struct {
	Origin complex128
	Scale  float64
	Width  int
	Height int
}

// TileConfig describes tile geometry and cache policy.
type TileConfig struct {
	// Edge is the tile edge length in screen pixels.
	Edge int
	// Divisors lists, coarsest first, how much smaller each level is than Edge.
	Divisors []int
	// EvictionFactor multiplies the visible tile count to get the sweep threshold.
	EvictionFactor int
	// Overview is the edge of the synchronous overview buffer.
	Overview int
	// MaxTiles caps the number of allocated tiles. Zero means unbounded.
	MaxTiles int
}

// EvaluatorConfig parameterises the escape-time iteration.
type EvaluatorConfig struct {
	MaxIterations int
	Bands         int
}

// OutputConfig describes where the final frame goes.
type OutputConfig struct {
	Path     string
	Format   string
	Annotate bool
}

// StepKind discriminates script steps.
type StepKind uint8

const (
	// StepPan moves the viewport.
	StepPan StepKind = iota + 1
	// StepZoom scales the viewport around its center.
	StepZoom
)

// Step is a scripted viewport change replayed before the final render.
type Step struct {
	Kind StepKind
	DX   int
	DY   int
	// Zoom is the number of zoom steps. Positive values zoom out.
	Zoom float64
}

// Factor returns the scale multiplier of a zoom step.
func (s Step) Factor() float64 {
	return math.Pow(ZoomBase, s.Zoom)
}

// DefaultWorkers returns the worker pool size used when none is configured.
func DefaultWorkers() int {
	return max(runtime.NumCPU()-1, 1)
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Origin: complex(-2, -2),
			Scale:  1.0 / 256,
			Width:  1024,
			Height: 1024,
		},
		Tiles: TileConfig{
			Edge:           256,
			Divisors:       []int{32, 8, 2, 1},
			EvictionFactor: 4,
			Overview:       64,
		},
		Workers: DefaultWorkers(),
		Evaluator: EvaluatorConfig{
			MaxIterations: 255,
			Bands:         64,
		},
		Palette: PaletteClassic,
		Output: OutputConfig{
			Path:   "fractal.png",
			Format: FormatPNG,
		},
	}
}

// LevelSizes returns the buffer edge of every level, coarsest first.
func (t TileConfig) LevelSizes() []int {
	sizes := make([]int, len(t.Divisors))
	for i, d := range t.Divisors {
		sizes[i] = t.Edge / d
	}
	return sizes
}

// SweepThreshold returns the cache size above which a sweep runs for a
// width x height screen.
func (t TileConfig) SweepThreshold(width, height int) int {
	return (height/t.Edge + 2) * (width/t.Edge + 2) * t.EvictionFactor
}

// Validate checks the tile geometry.
func (t TileConfig) Validate() error {
	if t.Edge <= 0 {
		return zerr.With(ErrInvalidTileEdge, "edge", t.Edge)
	}
	if len(t.Divisors) == 0 || t.Divisors[len(t.Divisors)-1] != 1 {
		return zerr.With(ErrInvalidLevels, "divisors", t.Divisors)
	}
	for i, d := range t.Divisors {
		if d <= 0 || t.Edge%d != 0 || (i > 0 && d >= t.Divisors[i-1]) {
			return zerr.With(ErrInvalidLevels, "divisors", t.Divisors)
		}
	}
	if t.EvictionFactor < 1 {
		return zerr.With(ErrInvalidEvictionFactor, "factor", t.EvictionFactor)
	}
	if t.Overview <= 0 {
		return zerr.With(ErrInvalidTileEdge, "overview", t.Overview)
	}
	return nil
}

// Validate checks the iteration budget and band count.
func (e EvaluatorConfig) Validate() error {
	if e.MaxIterations < 1 || e.MaxIterations > math.MaxUint16 {
		return zerr.With(ErrInvalidIterations, "max_iterations", e.MaxIterations)
	}
	if e.Bands < 1 || e.Bands > 256 {
		return zerr.With(ErrInvalidBands, "bands", e.Bands)
	}
	return nil
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	v := c.Viewport
	if v.Scale <= 0 || math.IsInf(v.Scale, 0) || math.IsNaN(v.Scale) {
		return zerr.With(ErrInvalidScale, "scale", v.Scale)
	}
	if v.Width <= 0 || v.Height <= 0 {
		return zerr.With(ErrInvalidDimensions, "size", [2]int{v.Width, v.Height})
	}
	if err := c.Tiles.Validate(); err != nil {
		return err
	}
	if err := c.Evaluator.Validate(); err != nil {
		return err
	}
	if _, err := NormalizeFormat(c.Output.Format); err != nil {
		return err
	}
	for i, s := range c.Script {
		if s.Kind != StepPan && s.Kind != StepZoom {
			return zerr.With(ErrInvalidScriptStep, "step", i)
		}
	}
	return nil
}

// InitialViewport returns the viewport described by the config.
func (c *Config) InitialViewport() Viewport {
	return NewViewport(c.Viewport.Origin, c.Viewport.Scale)
}

// NormalizeFormat lowercases a format name and resolves aliases.
func NormalizeFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimPrefix(format, ".")); f {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatBMP:
		return FormatBMP, nil
	case FormatTIFF, "tif":
		return FormatTIFF, nil
	default:
		return "", zerr.With(ErrUnsupportedFormat, "format", format)
	}
}
