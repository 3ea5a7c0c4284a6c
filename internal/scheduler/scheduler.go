package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/ctxlog"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
)

// Options tunes a single Run call.
type Options struct {
	// Sink receives progress updates from all engines. May be nil. Engines
	// invoke the sink from their own goroutines, so invocations from
	// different engines interleave and never block one another.
	Sink legend.ProgressSink
	// PerEngineTimeout bounds each engine's run. Zero means no timeout. An
	// engine exceeding it is reported as StatusTimedOut and its context is
	// canceled; sibling engines are unaffected.
	PerEngineTimeout time.Duration
	// Observer, if non-nil, is notified of every finished run.
	Observer Observer
}

// Run executes every engine concurrently against req and returns one Outcome
// per engine, in the same order as the engines argument. It blocks until all
// engines complete, unless ctx is canceled first, in which case still-running
// engines are reported as StatusCanceled and their goroutines drain in the
// background once their contexts fire.
func Run(ctx context.Context, req legend.Request, engines []legend.Engine, opts Options) []Outcome {
	logger := ctxlog.FromContext(ctx)

	n := len(engines)
	results := make([]Outcome, n)
	finished := make(chan int, n)

	logger.Debug("Scheduler launching engines.", "count", n, "symbol", req.Symbol, "timeframe", req.Timeframe)
	for i, e := range engines {
		go func(i int, e legend.Engine) {
			// Each engine gets its own copy of the request; the only thing
			// tasks share is their result slot, published via the channel.
			results[i] = runOne(ctx, req, e, opts)
			finished <- i
		}(i, e)
	}

	received := make([]bool, n)
	for completed := 0; completed < n; {
		select {
		case i := <-finished:
			received[i] = true
			completed++
		case <-ctx.Done():
			logger.Warn("Scheduler canceled, abandoning stragglers.", "completed", completed, "total", n)
			out := make([]Outcome, n)
			for i := range out {
				if received[i] {
					out[i] = results[i]
					continue
				}
				out[i] = Outcome{
					Legend: engines[i].Name(),
					Status: StatusCanceled,
					Err:    ctx.Err(),
				}
			}
			return out
		}
	}

	logger.Debug("Scheduler finished, all engines complete.", "count", n)
	return results
}

// runOne executes a single engine with isolation: its own derived context,
// panic capture, and outcome classification.
func runOne(ctx context.Context, req legend.Request, e legend.Engine, opts Options) (out Outcome) {
	logger := ctxlog.FromContext(ctx).With("legend", e.Name())
	start := time.Now()

	out.Legend = e.Name()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Engine panicked.", "panic", r)
			out.Status = StatusFailed
			out.Err = fmt.Errorf("engine %q panicked: %v", e.Name(), r)
			out.Envelope = nil
		}
		out.Elapsed = time.Since(start)
		if opts.Observer != nil {
			opts.Observer.ObserveRun(out.Legend, out.Status, out.Elapsed)
		}
	}()

	runCtx := ctx
	cancel := context.CancelFunc(func() {})
	if opts.PerEngineTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, opts.PerEngineTimeout)
	}
	defer cancel()

	logger.Debug("Engine run started.")
	env, err := e.Run(runCtx, req, opts.Sink)

	switch {
	case err == nil && env != nil:
		logger.Debug("Engine run succeeded.", "elapsed", time.Since(start))
		out.Status = StatusOK
		out.Envelope = env
	case err == nil:
		logger.Error("Engine returned neither envelope nor error.")
		out.Status = StatusFailed
		out.Err = fmt.Errorf("engine %q returned no envelope", e.Name())
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(runCtx.Err(), context.DeadlineExceeded):
		logger.Warn("Engine timed out.", "timeout", opts.PerEngineTimeout)
		out.Status = StatusTimedOut
		out.Err = fmt.Errorf("engine %q timed out after %s: %w", e.Name(), opts.PerEngineTimeout, err)
	case errors.Is(err, context.Canceled):
		logger.Warn("Engine canceled.")
		out.Status = StatusCanceled
		out.Err = err
	default:
		logger.Error("Engine run failed.", "error", err)
		out.Status = StatusFailed
		out.Err = err
	}
	return out
}
