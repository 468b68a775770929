// Package linear prints render phases as plain chronological lines.
package linear

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/fractile/internal/ui/output"
	"go.trai.ch/fractile/internal/ui/style"
)

// Reporter implements ports.Reporter. Nested phases are indented under
// their parent. Output is buffered and flushed whenever a root phase ends.
type Reporter struct {
	mu    sync.Mutex
	w     *bufio.Writer
	out   *termenv.Output
	spans map[string]spanState
}

type spanState struct {
	name  string
	depth int
	start time.Time
	root  bool
}

// NewReporter returns a reporter writing to w. A nil w means stderr.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	bw := bufio.NewWriter(w)
	return &Reporter{
		w:     bw,
		out:   output.NewWithProfile(bw, output.ColorProfileANSI),
		spans: make(map[string]spanState),
	}
}

// OnSpanStart prints the phase name.
func (r *Reporter) OnSpanStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := spanState{name: name, start: startTime}
	if parent, ok := r.spans[parentID]; ok {
		state.depth = parent.depth + 1
	} else {
		state.root = true
	}
	r.spans[spanID] = state

	prefix := r.out.String(style.Circle).Foreground(r.out.Color(string(style.Slate))).String()
	r.printf(state.depth, "%s %s\n", prefix, name)
}

// OnSpanComplete prints the outcome and duration of the phase.
func (r *Reporter) OnSpanComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.spans[spanID]
	if !ok {
		return
	}
	delete(r.spans, spanID)

	elapsed := endTime.Sub(state.start).Round(time.Millisecond)
	if err != nil {
		mark := r.out.String(style.Cross).Foreground(r.out.Color(string(style.Red))).String()
		r.printf(state.depth, "%s %s failed after %v: %v\n", mark, state.name, elapsed, err)
	} else {
		mark := r.out.String(style.Check).Foreground(r.out.Color(string(style.Teal))).String()
		r.printf(state.depth, "%s %s in %v\n", mark, state.name, elapsed)
	}
	if state.root {
		_ = r.w.Flush()
	}
}

// Flush writes buffered lines.
func (r *Reporter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w.Flush()
}

func (r *Reporter) printf(depth int, format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, strings.Repeat("  ", depth)+format, args...)
}
