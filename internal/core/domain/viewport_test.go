package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractile/internal/core/domain"
)

func TestViewport_PixelToField(t *testing.T) {
	v := domain.NewViewport(complex(-2, -2), 1.0/256)

	assert.Equal(t, complex(-2, -2), v.PixelToField(0, 0))
	assert.Equal(t, complex(-1, -1.5), v.PixelToField(256, 128))
}

func TestViewport_PanLeavesTileRectsAlone(t *testing.T) {
	v := domain.NewViewport(complex(-2, -2), 1.0/256)
	addr := domain.Address{X: 256, Y: 512}
	before := v.TileRect(addr, 256)

	panned := v.Pan(100, -40)

	assert.Equal(t, before, panned.TileRect(addr, 256))
	assert.Equal(t, 100, panned.OffsetX)
	assert.Equal(t, -40, panned.OffsetY)
	assert.Equal(t, v.PixelToField(0, 0), panned.ScreenToField(100, -40))
}

func TestViewport_ZoomKeepsAnchorFixed(t *testing.T) {
	v := domain.NewViewport(complex(-2, -2), 1.0/256).Pan(37, -12)
	anchor := v.ScreenToField(512, 384)

	zoomed := v.Zoom(0.5, 512, 384)

	assert.InDelta(t, real(anchor), real(zoomed.ScreenToField(512, 384)), 1e-12)
	assert.InDelta(t, imag(anchor), imag(zoomed.ScreenToField(512, 384)), 1e-12)
	assert.InDelta(t, 1.0/512, zoomed.Scale, 1e-15)
	assert.Zero(t, zoomed.OffsetX)
	assert.Zero(t, zoomed.OffsetY)
}

func TestViewport_ZoomRejectsBadFactors(t *testing.T) {
	v := domain.NewViewport(complex(1, 1), 0.25)

	assert.Equal(t, v, v.Zoom(0, 10, 10))
	assert.Equal(t, v, v.Zoom(-2, 10, 10))
}

func TestViewport_AppendVisible(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  int
		w, h    int
		want    int
		firstAt domain.Address
	}{
		{name: "aligned", w: 1024, h: 512, want: 8, firstAt: domain.Address{}},
		{name: "partial edge", w: 1000, h: 300, want: 8, firstAt: domain.Address{}},
		{name: "panned right", dx: 10, w: 512, h: 256, want: 3, firstAt: domain.Address{X: -256}},
		{name: "panned left", dx: -10, dy: -300, w: 512, h: 256, want: 6, firstAt: domain.Address{X: 0, Y: 256}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := domain.NewViewport(0, 1).Pan(tt.dx, tt.dy)

			got := v.AppendVisible(nil, tt.w, tt.h, 256)

			require.Len(t, got, tt.want)
			assert.Equal(t, tt.firstAt, got[0])
			for _, a := range got {
				assert.Zero(t, a.X%256)
				assert.Zero(t, a.Y%256)
				assert.Less(t, a.X+tt.dx, tt.w)
				assert.Greater(t, a.X+tt.dx+256, 0)
			}
		})
	}
}

func TestRect_At(t *testing.T) {
	r := domain.Rect{Corner: complex(-1, 2), Diag: complex(4, 8)}

	assert.Equal(t, complex(-1, 2), r.At(0, 0))
	assert.Equal(t, complex(1, 4), r.At(0.5, 0.25))
}

func TestBookmark_RoundTripsViewport(t *testing.T) {
	v := domain.NewViewport(complex(-0.75, 0.1), 1e-4).Pan(20, 10)

	b := domain.NewBookmark("seahorse", v, testTime)

	assert.Equal(t, v.ScreenToField(0, 0), b.Viewport().PixelToField(0, 0))
	assert.InDelta(t, 1e-4, b.Viewport().Scale, 1e-18)
}
