// Package palette maps field intensities to colours.
package palette

import (
	"image/color"
	"maps"
	"slices"

	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/zerr"
)

// Func adapts a colour function into a named ports.Palette.
type Func struct {
	name  string
	color func(uint8) color.RGBA
}

// NewFunc returns a palette named name that colours with fn.
func NewFunc(name string, fn func(uint8) color.RGBA) Func {
	return Func{name: name, color: fn}
}

// Name returns the palette name.
func (f Func) Name() string { return f.name }

// Color returns the colour for intensity v.
func (f Func) Color(v uint8) color.RGBA { return f.color(v) }

// Classic spreads intensity over red, halves it into green and cycles blue
// through three steps.
func Classic(v uint8) color.RGBA {
	return color.RGBA{R: v * 4, G: v / 2, B: (v % 3) * 127, A: 0xff}
}

// Grayscale maps intensity to luminance.
func Grayscale(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// Fire ramps black through red and yellow to white. Bounded points stay
// black.
func Fire(v uint8) color.RGBA {
	t := int(v) * 3
	return color.RGBA{
		R: clamp(t),
		G: clamp(t - 256),
		B: clamp(t - 512),
		A: 0xff,
	}
}

func clamp(v int) uint8 {
	return uint8(min(max(v, 0), 0xff))
}

// Registry implements ports.PaletteRegistry.
type Registry struct {
	palettes map[string]ports.Palette
}

// NewRegistry returns a registry holding the built-in palettes and extra.
func NewRegistry(extra ...ports.Palette) *Registry {
	r := &Registry{palettes: make(map[string]ports.Palette)}
	for _, p := range []ports.Palette{
		NewFunc(domain.PaletteClassic, Classic),
		NewFunc("grayscale", Grayscale),
		NewFunc("fire", Fire),
	} {
		r.palettes[p.Name()] = p
	}
	for _, p := range extra {
		r.palettes[p.Name()] = p
	}
	return r
}

// Lookup returns the named palette.
func (r *Registry) Lookup(name string) (ports.Palette, error) {
	p, ok := r.palettes[name]
	if !ok {
		err := zerr.With(domain.ErrUnknownPalette, "palette", name)
		return nil, zerr.With(err, "known", r.Names())
	}
	return p, nil
}

// Names lists the registered palettes in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.palettes))
}
