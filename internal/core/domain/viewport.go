package domain

import "math"

// Address is the pixel-space position of a tile's top-left corner.
// Both coordinates are multiples of the tile edge.
type Address struct {
	X, Y int
}

// Rect is a field-space rectangle.
type Rect struct {
	Corner complex128
	Diag   complex128
}

// At returns the field point at the fractional position (u, v) of the rectangle.
func (r Rect) At(u, v float64) complex128 {
	return complex(real(r.Corner)+u*real(r.Diag), imag(r.Corner)+v*imag(r.Diag))
}

// Viewport maps screen pixels to field coordinates.
//
// Origin and Scale define the address space: address (px, py) sits at
// Origin + Scale*(px, py). The pan offset shifts the screen against that space
// so panning never changes which field rectangle an address covers.
type Viewport struct {
	Origin  complex128
	Scale   float64
	OffsetX int
	OffsetY int
}

// NewViewport returns a viewport with no pan offset.
func NewViewport(origin complex128, scale float64) Viewport {
	return Viewport{Origin: origin, Scale: scale}
}

// PixelToField maps an address-space pixel to the field.
func (v Viewport) PixelToField(px, py int) complex128 {
	return v.Origin + complex(v.Scale*float64(px), v.Scale*float64(py))
}

// ScreenToField maps a screen pixel to the field.
func (v Viewport) ScreenToField(sx, sy int) complex128 {
	return v.PixelToField(sx-v.OffsetX, sy-v.OffsetY)
}

// TileRect returns the field rectangle covered by the tile at addr.
func (v Viewport) TileRect(addr Address, edge int) Rect {
	extent := v.Scale * float64(edge)
	return Rect{
		Corner: v.PixelToField(addr.X, addr.Y),
		Diag:   complex(extent, extent),
	}
}

// Pan moves the screen by (dx, dy) pixels.
func (v Viewport) Pan(dx, dy int) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// Zoom multiplies the scale by factor keeping the field point under the
// screen pixel (ax, ay) in place. The pan offset is folded into the origin.
// Non-positive or non-finite factors leave the viewport unchanged.
func (v Viewport) Zoom(factor float64, ax, ay int) Viewport {
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return v
	}
	anchor := v.ScreenToField(ax, ay)
	v.Scale *= factor
	v.Origin = anchor - complex(v.Scale*float64(ax), v.Scale*float64(ay))
	v.OffsetX, v.OffsetY = 0, 0
	return v
}

// AppendVisible appends the addresses of every tile intersecting a
// width x height screen, row by row, and returns the extended slice.
func (v Viewport) AppendVisible(dst []Address, width, height, edge int) []Address {
	if edge <= 0 {
		return dst
	}
	x0 := floorDiv(-v.OffsetX, edge) * edge
	y0 := floorDiv(-v.OffsetY, edge) * edge
	for y := y0; y+v.OffsetY < height; y += edge {
		for x := x0; x+v.OffsetX < width; x += edge {
			dst = append(dst, Address{X: x, Y: y})
		}
	}
	return dst
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
