package ports

import (
	"context"
	"image"
)

//go:generate mockgen -source=viewer.go -destination=mocks/mock_viewer.go -package=mocks

// Scene is an explorable view the interactive viewer drives.
type Scene interface {
	// Pan moves the view by (dx, dy) screen pixels.
	Pan(dx, dy int)
	// Zoom scales the view by ZoomBase^steps around the screen center.
	Zoom(steps float64, width, height int)
	// Reset returns to the initial view.
	Reset()
	// Render composites the current frame. complete is false while tiles
	// are still being refined.
	Render(width, height int) (img *image.RGBA, complete bool)
	// Status describes the view in one line.
	Status() string
}

// Viewer presents a scene interactively until the user quits or ctx ends.
type Viewer interface {
	Run(ctx context.Context, scene Scene) error
}
