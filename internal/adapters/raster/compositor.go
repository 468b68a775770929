// Package raster composites frames into images and encodes them.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"go.trai.ch/fractile/internal/core/domain"
)

// Background fills screen areas no buffer covers.
var Background = color.RGBA{A: 0xff}

// Compositor implements ports.Compositor with nearest-neighbour scaling, so
// coarse levels show as blocks the way they were computed.
type Compositor struct {
	scaler draw.Scaler
	face   font.Face
}

// NewCompositor returns a compositor using nearest-neighbour scaling and the
// 7x13 bitmap font for captions.
func NewCompositor() *Compositor {
	return &Compositor{scaler: draw.NearestNeighbor, face: basicfont.Face7x13}
}

// Compose draws the overview, then every non-blank tile, into dst.
func (c *Compositor) Compose(dst *image.RGBA, frame *domain.Frame) *image.RGBA {
	bounds := image.Rect(0, 0, frame.Width, frame.Height)
	if dst == nil || dst.Bounds() != bounds {
		dst = image.NewRGBA(bounds)
	}
	draw.Draw(dst, bounds, image.NewUniform(Background), image.Point{}, draw.Src)

	c.place(dst, frame.Overview)
	for _, p := range frame.Tiles {
		c.place(dst, p)
	}
	return dst
}

func (c *Compositor) place(dst *image.RGBA, p domain.Placement) {
	if p.Image == nil || p.Blank() {
		return
	}
	target := image.Rect(p.X, p.Y, p.X+p.Edge, p.Y+p.Edge)
	if !target.Overlaps(dst.Bounds()) {
		return
	}
	c.scaler.Scale(dst, target, p.Image, p.Image.Bounds(), draw.Over, nil)
}

// Annotate draws lines over a translucent box in the top-left corner.
func (c *Compositor) Annotate(dst *image.RGBA, lines []string) {
	if dst == nil || len(lines) == 0 {
		return
	}
	metrics := c.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	const pad = 4

	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(c.face, line).Ceil())
	}
	box := image.Rect(0, 0, width+2*pad, len(lines)*lineHeight+2*pad).Intersect(dst.Bounds())
	draw.Draw(dst, box, image.NewUniform(color.RGBA{A: 0xa0}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: c.face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(pad, pad+i*lineHeight+metrics.Ascent.Ceil())
		d.DrawString(line)
	}
}
