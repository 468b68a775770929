package ports

import "time"

// Reporter presents render progress to the user.
// It decouples telemetry collection from presentation so the same span stream
// can drive plain terminal lines or nothing at all.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnSpanStart is called when a traced phase begins.
	// parentID is empty for root spans.
	OnSpanStart(spanID, parentID, name string, startTime time.Time)

	// OnSpanComplete is called when a traced phase ends. err is nil on success.
	OnSpanComplete(spanID string, endTime time.Time, err error)

	// Flush writes any buffered output.
	Flush() error
}
