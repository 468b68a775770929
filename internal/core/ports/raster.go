package ports

import (
	"image"
	"io"

	"go.trai.ch/fractile/internal/core/domain"
)

//go:generate mockgen -source=raster.go -destination=mocks/mock_raster.go -package=mocks

// Compositor draws frames into a single image.
type Compositor interface {
	// Compose draws the overview then every non-blank tile into dst, scaling
	// each buffer to its on-screen edge. dst is reallocated when nil or the
	// wrong size.
	Compose(dst *image.RGBA, frame *domain.Frame) *image.RGBA

	// Annotate draws caption lines in the top-left corner of dst.
	Annotate(dst *image.RGBA, lines []string)
}

// Exporter writes images to disk.
type Exporter interface {
	// Encode writes img to w in the given format.
	Encode(w io.Writer, format string, img image.Image) error

	// Export writes img to path, creating parent directories.
	Export(path, format string, img image.Image) error
}
