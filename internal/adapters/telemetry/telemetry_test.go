package telemetry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/fractile/internal/adapters/telemetry"
	"go.trai.ch/fractile/internal/core/ports"
	"go.trai.ch/fractile/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type recorded struct {
	id, parent, name string
	err              error
	ended            bool
}

// recordingReporter keeps span events in order.
type recordingReporter struct {
	spans   []*recorded
	byID    map[string]*recorded
	flushes int
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{byID: make(map[string]*recorded)}
}

func (r *recordingReporter) OnSpanStart(id, parent, name string, _ time.Time) {
	rec := &recorded{id: id, parent: parent, name: name}
	r.spans = append(r.spans, rec)
	r.byID[id] = rec
}

func (r *recordingReporter) OnSpanComplete(id string, _ time.Time, err error) {
	r.byID[id].ended = true
	r.byID[id].err = err
}

func (r *recordingReporter) Flush() error {
	r.flushes++
	return nil
}

func TestProvider_NestedSpansReachReporter(t *testing.T) {
	rep := newRecordingReporter()
	p := telemetry.NewProvider(rep)
	tracer := p.Tracer()

	ctx, render := tracer.Start(t.Context(), "render")
	_, settle := tracer.Start(ctx, "settle")
	settle.SetAttribute("frames", 12)
	settle.RecordError(errors.New("deadline exceeded"))
	settle.End()
	render.End()
	require.NoError(t, p.Shutdown(t.Context()))

	require.Len(t, rep.spans, 2)
	assert.Equal(t, "render", rep.spans[0].name)
	assert.Empty(t, rep.spans[0].parent)
	assert.Equal(t, "settle", rep.spans[1].name)
	assert.Equal(t, rep.spans[0].id, rep.spans[1].parent)
	assert.True(t, rep.spans[0].ended)
	require.NoError(t, rep.spans[0].err)
	require.EqualError(t, rep.spans[1].err, "deadline exceeded")
	assert.Positive(t, rep.flushes)
}

func TestOTelTracer_AsRootStartsNewTrace(t *testing.T) {
	rep := newRecordingReporter()
	tracer := telemetry.NewProvider(rep).Tracer()

	ctx, outer := tracer.Start(t.Context(), "watch")
	_, inner := tracer.Start(ctx, "render", ports.AsRoot())
	inner.End()
	outer.End()

	require.Len(t, rep.spans, 2)
	assert.Empty(t, rep.spans[1].parent)
}

func TestOTelSpan_SetAttributeTypes(t *testing.T) {
	tracer := telemetry.NewProvider(nil).Tracer()
	_, span := tracer.Start(t.Context(), "attrs")

	assert.NotPanics(t, func() {
		span.SetAttribute("s", "v")
		span.SetAttribute("i", 1)
		span.SetAttribute("i64", int64(2))
		span.SetAttribute("f", 0.5)
		span.SetAttribute("b", true)
		span.SetAttribute("ss", []string{"a"})
		span.SetAttribute("other", complex(1, 2))
		span.RecordError(nil)
	})
	span.End()
}

func TestBridge_ForwardsToMockReporter(t *testing.T) {
	ctrl := gomock.NewController(t)
	rep := mocks.NewMockReporter(ctrl)
	bridge := telemetry.NewBridge(rep)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))

	gomock.InOrder(
		rep.EXPECT().OnSpanStart(gomock.Any(), "", "export", gomock.Any()),
		rep.EXPECT().OnSpanComplete(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())),
		rep.EXPECT().Flush().Return(nil),
	)

	_, span := tp.Tracer("test").Start(t.Context(), "export")
	span.SetStatus(codes.Error, "")
	span.End()
	require.NoError(t, tp.Shutdown(t.Context()))
}

func TestBridge_NilReporter(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))

	_, span := tp.Tracer("test").Start(t.Context(), "quiet")
	span.End()

	require.NoError(t, bridge.ForceFlush(t.Context()))
	require.NoError(t, tp.Shutdown(t.Context()))
}

func TestNoOpTracer(t *testing.T) {
	ctx := t.Context()
	got, span := telemetry.NoOpTracer{}.Start(ctx, "x", ports.AsRoot())

	assert.Equal(t, ctx, got)
	span.SetAttribute("k", 1)
	span.RecordError(errors.New("ignored"))
	span.End()
}
