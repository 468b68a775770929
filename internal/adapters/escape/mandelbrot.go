// Package escape implements escape-time evaluators.
package escape

import (
	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
)

// Mandelbrot iterates z = z² + c from zero.
type Mandelbrot struct {
	maxIterations int
	bands         int
}

// NewMandelbrot validates cfg and returns an evaluator.
func NewMandelbrot(cfg domain.EvaluatorConfig) (*Mandelbrot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Mandelbrot{maxIterations: cfg.MaxIterations, bands: cfg.Bands}, nil
}

// Evaluate returns the escape iteration modulo the band count, or 0 when c
// stays bounded for the whole budget.
func (m *Mandelbrot) Evaluate(c complex128) uint8 {
	var zr, zi float64
	cr, ci := real(c), imag(c)
	for i := range m.maxIterations {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 >= 4 {
			return uint8(i % m.bands)
		}
		zr, zi = zr2-zi2+cr, 2*zr*zi+ci
	}
	return 0
}

// Factory implements ports.EvaluatorFactory.
type Factory struct{}

// New returns a Mandelbrot evaluator for cfg.
func (Factory) New(cfg domain.EvaluatorConfig) (ports.Evaluator, error) {
	return NewMandelbrot(cfg)
}
