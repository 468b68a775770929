// Package watcher reports changes to a single file using fsnotify.
package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventBuffer = 16

// Watcher implements ports.Watcher. It watches the directory holding the
// target so that editors replacing the file by rename are still seen.
type Watcher struct {
	log    ports.Logger
	window time.Duration

	fs        *fsnotify.Watcher
	target    string
	debouncer *Debouncer

	mu     sync.Mutex
	events chan ports.WatchEvent
	closed bool
}

// NewWatcher returns a watcher debouncing over window.
func NewWatcher(log ports.Logger, window time.Duration) *Watcher {
	return &Watcher{
		log:    log,
		window: window,
		events: make(chan ports.WatchEvent, eventBuffer),
	}
}

// Start begins watching path. Events stop when ctx is done or Stop is
// called.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", path)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", path)
	}
	w.fs = fsw
	w.target = abs
	w.debouncer = NewDebouncer(w.window, w.publish)

	go w.process(ctx)
	return nil
}

// Stop closes the underlying watcher. Events ends once pending events are
// drained.
func (w *Watcher) Stop() error {
	if w.fs == nil {
		return nil
	}
	return w.fs.Close()
}

// Events yields debounced changes to the watched file.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for ev := range w.events {
			if !yield(ev) {
				return
			}
		}
	}
}

func (w *Watcher) process(ctx context.Context) {
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			_ = w.fs.Close()
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			if ev, ok := convertEvent(event); ok {
				w.debouncer.Add(ev)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher: " + err.Error())
		}
	}
}

// publish hands events to the consumer. A full buffer drops events: the
// consumer re-reads the whole file anyway.
func (w *Watcher) publish(events []ports.WatchEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	for _, ev := range events {
		select {
		case w.events <- ev:
		default:
		}
	}
}

func (w *Watcher) close() {
	w.debouncer.Stop()
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.closed = true
		close(w.events)
	}
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
