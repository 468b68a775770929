package raster

import (
	"bufio"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/zerr"
)

// Exporter implements ports.Exporter for PNG, BMP and TIFF.
type Exporter struct {
	png png.Encoder
}

// NewExporter returns an exporter that favours encoding speed for PNG.
func NewExporter() *Exporter {
	return &Exporter{png: png.Encoder{CompressionLevel: png.BestSpeed}}
}

// Encode writes img to w.
func (e *Exporter) Encode(w io.Writer, format string, img image.Image) error {
	format, err := domain.NormalizeFormat(format)
	if err != nil {
		return err
	}
	switch format {
	case domain.FormatBMP:
		err = bmp.Encode(w, img)
	case domain.FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = e.png.Encode(w, img)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "format", format)
	}
	return nil
}

// Export writes img to path through a temporary file in the same directory,
// so readers never see a partial image.
func (e *Exporter) Export(path, format string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "path", path)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "path", path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := bufio.NewWriter(tmp)
	if err := e.Encode(w, format, img); err != nil {
		_ = tmp.Close()
		return zerr.With(err, "path", path)
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "path", path)
	}
	return nil
}
