package scheduler

import (
	"time"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
)

// Status classifies how an engine's run ended.
type Status int

const (
	// StatusOK means the engine produced an envelope.
	StatusOK Status = iota
	// StatusFailed means the engine returned an error or panicked.
	StatusFailed
	// StatusTimedOut means the engine exceeded its per-engine timeout.
	StatusTimedOut
	// StatusCanceled means the overall call was canceled before the engine
	// finished.
	StatusCanceled
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusTimedOut:
		return "timed_out"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Outcome is the captured result of one engine's run: either an envelope or
// a classified failure. Failures are data here, never thrown across the join
// boundary.
type Outcome struct {
	// Legend is the name of the engine this outcome belongs to.
	Legend string
	// Status classifies the run.
	Status Status
	// Envelope is set only when Status is StatusOK.
	Envelope *legend.Envelope
	// Err is set for any non-OK status.
	Err error
	// Elapsed is how long the engine ran before completing or being cut off.
	Elapsed time.Duration
}

// OK reports whether the outcome carries a successful envelope.
func (o Outcome) OK() bool { return o.Status == StatusOK }

// Observer receives a notification for every finished engine run. The
// metrics package implements it; a nil Observer disables observation.
type Observer interface {
	ObserveRun(legend string, status Status, elapsed time.Duration)
}
