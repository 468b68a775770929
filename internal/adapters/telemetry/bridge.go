package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/fractile/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge is a span processor that forwards span lifecycles to a
// ports.Reporter.
type Bridge struct {
	reporter ports.Reporter
}

// NewBridge returns a bridge feeding reporter. A nil reporter drops
// everything.
func NewBridge(reporter ports.Reporter) *Bridge {
	return &Bridge{reporter: reporter}
}

// OnStart reports the span start.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	if b.reporter == nil {
		return
	}
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}
	var parentID string
	if p := trace.SpanContextFromContext(parent); p.IsValid() && p.TraceID() == sc.TraceID() {
		parentID = p.SpanID().String()
	}
	b.reporter.OnSpanStart(sc.SpanID().String(), parentID, s.Name(), s.StartTime())
}

// OnEnd reports the span outcome. An error status becomes a non-nil error.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.reporter == nil {
		return
	}
	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}
	var err error
	if status := s.Status(); status.Code == codes.Error {
		desc := status.Description
		if desc == "" {
			desc = "failed"
		}
		err = errors.New(desc)
	}
	b.reporter.OnSpanComplete(sc.SpanID().String(), s.EndTime(), err)
}

// ForceFlush flushes the reporter.
func (b *Bridge) ForceFlush(_ context.Context) error {
	if b.reporter == nil {
		return nil
	}
	return b.reporter.Flush()
}

// Shutdown flushes the reporter.
func (b *Bridge) Shutdown(ctx context.Context) error {
	return b.ForceFlush(ctx)
}
