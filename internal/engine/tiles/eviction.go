package tiles

import "go.trai.ch/fractile/internal/core/domain"

// Tracker compares the tiles touched in consecutive frames.
//
// Every frame the driver touches the visible tiles, optionally sweeps the
// cache when it has grown too large, then calls Finish. The sets are swapped
// and cleared in place so a frame allocates nothing once warm.
type Tracker struct {
	previous map[*Tile]struct{}
	current  map[*Tile]struct{}
	stale    []domain.Address
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		previous: make(map[*Tile]struct{}),
		current:  make(map[*Tile]struct{}),
	}
}

// Touch records t as visible in the current frame.
func (tr *Tracker) Touch(t *Tile) {
	tr.current[t] = struct{}{}
}

// Visible reports whether t was touched in the current frame.
func (tr *Tracker) Visible(t *Tile) bool {
	_, ok := tr.current[t]
	return ok
}

// Sweep evicts every cached tile not touched in the current frame and
// returns how many were evicted.
func (tr *Tracker) Sweep(c *Cache) int {
	tr.stale = tr.stale[:0]
	for addr, t := range c.All() {
		if _, ok := tr.current[t]; !ok {
			tr.stale = append(tr.stale, addr)
		}
	}
	for _, addr := range tr.stale {
		c.Evict(addr)
	}
	return len(tr.stale)
}

// Finish cancels tiles visible last frame but not this one, then starts a new
// generation. It returns the number of tiles hinted.
func (tr *Tracker) Finish() int {
	n := 0
	for t := range tr.previous {
		if _, ok := tr.current[t]; !ok {
			t.Cancel(domain.ReasonStale)
			n++
		}
	}
	tr.previous, tr.current = tr.current, tr.previous
	clear(tr.current)
	return n
}
