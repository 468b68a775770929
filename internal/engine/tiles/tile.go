// Package tiles implements progressive raster tiles, the cache that recycles
// them and the generation tracker that retires the ones that scrolled away.
package tiles

import (
	"image"
	"sync"
	"sync/atomic"

	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
)

const blankLevel = -1

// Spec describes the geometry and field of every tile built from it.
type Spec struct {
	// Edge is the on-screen edge length in pixels.
	Edge int
	// Divisors lists, coarsest first, how much smaller each level is than Edge.
	Divisors  []int
	Evaluator ports.Evaluator
	Palette   ports.Palette
}

// NewSpec derives a Spec from the tile section of a config.
func NewSpec(cfg domain.TileConfig, eval ports.Evaluator, palette ports.Palette) Spec {
	return Spec{
		Edge:      cfg.Edge,
		Divisors:  cfg.Divisors,
		Evaluator: eval,
		Palette:   palette,
	}
}

// Buffer is a published level. It is never written again until the tile is
// reparameterized.
type Buffer struct {
	Image *image.RGBA
	// Level is the published level index, or -1 for the blank placeholder.
	Level int
}

// Blank reports whether the buffer is the shared placeholder.
func (b Buffer) Blank() bool {
	return b.Level == blankLevel
}

// Tile is a screen-aligned cell of the field filled progressively, one row
// per Update, coarsest level first.
type Tile struct {
	eval    ports.Evaluator
	palette ports.Palette
	edge    int
	levels  []*image.RGBA
	blank   *image.RGBA

	published atomic.Int32
	scheduled atomic.Bool
	executing atomic.Bool

	mu      sync.Mutex
	rect    domain.Rect
	level   int
	row     int
	gen     uint64
	pending domain.CancelReason

	// addr is owned by the cache goroutine.
	addr domain.Address
}

// NewTile allocates every level buffer up front and publishes blank.
// It panics if blank is nil.
func NewTile(spec Spec, blank *image.RGBA) *Tile {
	if blank == nil {
		panic("tiles: nil blank placeholder")
	}
	levels := make([]*image.RGBA, len(spec.Divisors))
	for i, d := range spec.Divisors {
		n := spec.Edge / d
		levels[i] = image.NewRGBA(image.Rect(0, 0, n, n))
	}
	t := &Tile{
		eval:    spec.Evaluator,
		palette: spec.Palette,
		edge:    spec.Edge,
		levels:  levels,
		blank:   blank,
	}
	t.published.Store(blankLevel)
	return t
}

// Reparameterize points the tile at a new field rectangle. Any fill in
// progress aborts at its next row commit. Level buffers are kept and
// overwritten from the top by the next fill.
func (t *Tile) Reparameterize(rect domain.Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rect = rect
	t.level, t.row = 0, 0
	t.gen++
	t.pending = domain.ReasonNone
	t.published.Store(blankLevel)
}

// Cancel asks an in-flight fill to stop at its next checkpoint.
// It does nothing when the tile is neither scheduled nor executing.
func (t *Tile) Cancel(reason domain.CancelReason) {
	if !t.scheduled.Load() && !t.executing.Load() {
		return
	}
	t.mu.Lock()
	t.pending = reason
	t.mu.Unlock()
}

// TrySchedule marks the tile in flight. It returns false if it already was.
func (t *Tile) TrySchedule() bool {
	if !t.scheduled.CompareAndSwap(false, true) {
		return false
	}
	t.mu.Lock()
	t.pending = domain.ReasonNone
	t.mu.Unlock()
	return true
}

// Release clears the in-flight marker.
func (t *Tile) Release() {
	t.scheduled.Store(false)
}

// Scheduled reports whether the tile is in flight.
func (t *Tile) Scheduled() bool {
	return t.scheduled.Load()
}

// Update computes one row of the current level.
//
// It returns Progressed while the level has rows left, LevelCompleted after
// publishing a level, Finished after publishing the last one and
// Cancelled when a pending cancellation or a reparameterization was seen.
// A concurrent call returns Cancelled(Busy) without waiting.
func (t *Tile) Update() domain.FillResult {
	if !t.executing.CompareAndSwap(false, true) {
		return domain.Cancelled(domain.ReasonBusy)
	}
	defer t.executing.Store(false)

	t.mu.Lock()
	if t.level >= len(t.levels) {
		t.mu.Unlock()
		return domain.Finished()
	}
	if reason := t.pending; reason != domain.ReasonNone {
		t.pending = domain.ReasonNone
		t.mu.Unlock()
		return domain.Cancelled(reason)
	}
	gen, level, row, rect := t.gen, t.level, t.row, t.rect
	t.mu.Unlock()

	img := t.levels[level]
	t.fillRow(img, row, rect)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.gen != gen {
		return domain.Cancelled(domain.ReasonReparameterize)
	}
	row++
	if row < img.Rect.Dy() {
		t.row = row
		return domain.Progressed()
	}

	t.published.Store(int32(level))
	t.level, t.row = level+1, 0
	if t.level == len(t.levels) {
		return domain.Finished()
	}
	return domain.LevelCompleted()
}

// Fill runs Update until a level is published, the tile finishes or the
// fill is cancelled.
func (t *Tile) Fill() domain.FillResult {
	for {
		res := t.Update()
		if res.Status != domain.StatusProgressed {
			return res
		}
	}
}

func (t *Tile) fillRow(img *image.RGBA, row int, rect domain.Rect) {
	n := img.Rect.Dx()
	v := float64(row) / float64(n)
	pix := img.Pix[row*img.Stride : row*img.Stride+4*n]
	for x := range n {
		c := t.palette.Color(t.eval.Evaluate(rect.At(float64(x)/float64(n), v)))
		p := pix[4*x : 4*x+4 : 4*x+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xff
	}
}

// Published returns the last complete buffer without locking.
func (t *Tile) Published() Buffer {
	idx := t.published.Load()
	if idx == blankLevel {
		return Buffer{Image: t.blank, Level: blankLevel}
	}
	return Buffer{Image: t.levels[idx], Level: int(idx)}
}

// CurrentDetail ranks buf for scheduling. Blank ranks lowest, then the
// coarser the published level the higher the rank.
func (t *Tile) CurrentDetail(buf Buffer) int {
	if buf.Blank() {
		return 0
	}
	return len(t.levels) - buf.Level
}

// Final reports whether buf is the finest level.
func (t *Tile) Final(buf Buffer) bool {
	return buf.Level == len(t.levels)-1
}

// Levels returns the number of levels.
func (t *Tile) Levels() int {
	return len(t.levels)
}

// Edge returns the on-screen edge length.
func (t *Tile) Edge() int {
	return t.edge
}

// Rect returns the field rectangle the tile currently represents.
func (t *Tile) Rect() domain.Rect {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rect
}

// Address returns the cache key the tile is stored under.
func (t *Tile) Address() domain.Address {
	return t.addr
}

// Placement positions buf on screen for a viewport panned by (offsetX, offsetY).
func (t *Tile) Placement(buf Buffer, offsetX, offsetY int) domain.Placement {
	return domain.Placement{
		X:     t.addr.X + offsetX,
		Y:     t.addr.Y + offsetY,
		Edge:  t.edge,
		Image: buf.Image,
		Level: buf.Level,
		Final: t.Final(buf),
	}
}
