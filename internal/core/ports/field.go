package ports

import (
	"image/color"

	"go.trai.ch/fractile/internal/core/domain"
)

//go:generate mockgen -source=field.go -destination=mocks/mock_field.go -package=mocks

// Evaluator computes the scalar field. Implementations must be pure and safe
// for concurrent use.
type Evaluator interface {
	// Evaluate returns the intensity at point c.
	Evaluate(c complex128) uint8
}

// Palette maps intensities to colours. Implementations must be safe for
// concurrent use.
type Palette interface {
	Name() string
	Color(intensity uint8) color.RGBA
}

// EvaluatorFactory builds evaluators from configuration.
type EvaluatorFactory interface {
	New(cfg domain.EvaluatorConfig) (Evaluator, error)
}

// PaletteRegistry resolves palettes by name.
type PaletteRegistry interface {
	// Lookup returns the named palette or domain.ErrUnknownPalette.
	Lookup(name string) (Palette, error)
	// Names lists the registered palettes in sorted order.
	Names() []string
}
