// Package testutil provides shared helpers for the test suite: a scripted
// fake engine, a thread-safe log buffer, and an end-to-end app harness.
package testutil

import (
	"context"
	"time"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
)

// FakeEngine is a scripted legend.Engine for tests. The zero value is a
// usable engine named "" that instantly succeeds with no facts; fill in
// fields to shape its behavior.
type FakeEngine struct {
	EngineName string
	Level      legend.ReliabilityLevel
	Kind       legend.EngineType

	// Facts becomes the envelope's facts on success.
	Facts map[string]any
	// Delay is simulated work time, interruptible by ctx.
	Delay time.Duration
	// Err, if set, makes the run fail after Delay.
	Err error
	// PanicMsg, if set, makes the run panic after Delay.
	PanicMsg string
	// Stages are progress stage labels reported before the delay.
	Stages []string
}

// Name implements legend.Engine.
func (f *FakeEngine) Name() string { return f.EngineName }

// Reliability implements legend.Engine.
func (f *FakeEngine) Reliability() legend.ReliabilityLevel { return f.Level }

// Type implements legend.Engine.
func (f *FakeEngine) Type() legend.EngineType { return f.Kind }

// Run implements legend.Engine.
func (f *FakeEngine) Run(ctx context.Context, req legend.Request, sink legend.ProgressSink) (*legend.Envelope, error) {
	for i, stage := range f.Stages {
		if sink != nil {
			sink.Report(legend.Progress{
				Legend:  f.EngineName,
				Stage:   stage,
				Percent: float64(i+1) / float64(len(f.Stages)) * 100,
			})
		}
	}

	if f.Delay > 0 {
		timer := time.NewTimer(f.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if f.PanicMsg != "" {
		panic(f.PanicMsg)
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return &legend.Envelope{
		Legend:    f.EngineName,
		Timeframe: req.Timeframe,
		At:        req.AsOf,
		Facts:     f.Facts,
	}, nil
}
