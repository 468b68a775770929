package watcher

import (
	"cmp"
	"slices"
	"sync"
	"time"
	"unique"

	"go.trai.ch/fractile/internal/core/ports"
)

// DefaultDebounceWindow is how long a file must stay quiet before its
// changes are reported. Editors often write a file in several steps.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces bursts of events per path. The last operation seen
// for a path wins.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]ports.WatchOp
	timer    *time.Timer
	window   time.Duration
	callback func(events []ports.WatchEvent)
}

// NewDebouncer returns a debouncer that calls callback once per quiet
// window with the events sorted by path.
func NewDebouncer(window time.Duration, callback func(events []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]ports.WatchOp),
		window:   window,
		callback: callback,
	}
}

// Add records an event and restarts the quiet window.
func (d *Debouncer) Add(ev ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(ev.Path)] = ev.Operation
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	events := d.takeLocked()
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}

// Flush reports pending events now, synchronously. It does nothing when
// the window already expired and the timer is delivering them.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	events := d.takeLocked()
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}

// Stop drops pending events and cancels the timer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

func (d *Debouncer) takeLocked() []ports.WatchEvent {
	if len(d.pending) == 0 {
		return nil
	}
	events := make([]ports.WatchEvent, 0, len(d.pending))
	for h, op := range d.pending {
		events = append(events, ports.WatchEvent{Path: h.Value(), Operation: op})
	}
	clear(d.pending)
	slices.SortFunc(events, func(a, b ports.WatchEvent) int { return cmp.Compare(a.Path, b.Path) })
	return events
}
