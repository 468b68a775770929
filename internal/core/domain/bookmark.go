package domain

import "time"

// Bookmark is a named viewport saved for later renders.
type Bookmark struct {
	Name      string    `json:"name"`
	OriginX   float64   `json:"originX"`
	OriginY   float64   `json:"originY"`
	Scale     float64   `json:"scale"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBookmark captures the origin and scale of v. Pan offsets are folded in
// so the bookmark reproduces what was on screen.
func NewBookmark(name string, v Viewport, now time.Time) Bookmark {
	origin := v.ScreenToField(0, 0)
	return Bookmark{
		Name:      name,
		OriginX:   real(origin),
		OriginY:   imag(origin),
		Scale:     v.Scale,
		CreatedAt: now,
	}
}

// Viewport returns the bookmarked view.
func (b Bookmark) Viewport() Viewport {
	return NewViewport(complex(b.OriginX, b.OriginY), b.Scale)
}

// RenderSummary describes the outcome of a render.
type RenderSummary struct {
	Width    int
	Height   int
	Frames   int
	Complete bool
	// Digest is the xxhash of the final frame's pixels.
	Digest    uint64
	Output    string
	Dumped    int
	Allocated int
	Duration  time.Duration
}
