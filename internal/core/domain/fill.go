package domain

import "fmt"

// FillStatus is the outcome of a single step of a tile fill.
type FillStatus uint8

const (
	// StatusProgressed means a row was written and the current level is not done yet.
	StatusProgressed FillStatus = iota
	// StatusLevelCompleted means a level was published and more levels remain.
	StatusLevelCompleted
	// StatusCancelled means the fill stopped at a checkpoint. See CancelReason.
	StatusCancelled
	// StatusFinished means the finest level is published.
	StatusFinished
)

func (s FillStatus) String() string {
	switch s {
	case StatusProgressed:
		return "progressed"
	case StatusLevelCompleted:
		return "level-completed"
	case StatusCancelled:
		return "cancelled"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// CancelReason explains why a fill stopped early.
type CancelReason uint8

const (
	// ReasonNone is the zero reason, used when nothing is pending.
	ReasonNone CancelReason = iota
	// ReasonPreempted means a more urgent tile was submitted after this one.
	ReasonPreempted
	// ReasonStale means the tile left the visible set.
	ReasonStale
	// ReasonReparameterize means the tile's rectangle changed or it was retired.
	ReasonReparameterize
	// ReasonBusy means another goroutine is already filling the tile.
	ReasonBusy
)

func (r CancelReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonPreempted:
		return "preempted"
	case ReasonStale:
		return "stale"
	case ReasonReparameterize:
		return "reparameterize"
	case ReasonBusy:
		return "busy"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// FillResult is returned by every fill step.
type FillResult struct {
	Status FillStatus
	Reason CancelReason
}

// Progressed reports a finished row.
func Progressed() FillResult { return FillResult{Status: StatusProgressed} }

// LevelCompleted reports a newly published level.
func LevelCompleted() FillResult { return FillResult{Status: StatusLevelCompleted} }

// Finished reports that the finest level is published.
func Finished() FillResult { return FillResult{Status: StatusFinished} }

// Cancelled reports a cooperative cancellation.
func Cancelled(reason CancelReason) FillResult {
	return FillResult{Status: StatusCancelled, Reason: reason}
}

func (r FillResult) String() string {
	if r.Status == StatusCancelled {
		return fmt.Sprintf("cancelled(%s)", r.Reason)
	}
	return r.Status.String()
}
