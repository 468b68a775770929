package domain

import "image"

// Placement is a buffer positioned on screen.
type Placement struct {
	// X and Y are the screen coordinates of the top-left corner.
	X, Y int
	// Edge is the on-screen size of the buffer.
	Edge  int
	Image *image.RGBA
	// Level is the published level index, or -1 for the blank placeholder.
	Level int
	Final bool
}

// Blank reports whether the placement shows the shared placeholder.
func (p Placement) Blank() bool {
	return p.Level < 0
}

// Ratio returns the number of screen pixels per buffer pixel.
func (p Placement) Ratio() float64 {
	if p.Image == nil || p.Image.Bounds().Dx() == 0 {
		return 0
	}
	return float64(p.Edge) / float64(p.Image.Bounds().Dx())
}

// Frame is everything a host needs to draw one frame.
type Frame struct {
	Width    int
	Height   int
	Overview Placement
	Tiles    []Placement
	// Complete is true when every visible tile shows its finest level.
	Complete  bool
	Submitted int
	Evicted   int
	Cached    int
}
