package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/scheduler"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/testutil"
)

var testRequest = legend.Request{Symbol: "TEST", Timeframe: "1D", AsOf: time.Now()}

func TestRun_OutcomesInInputOrder(t *testing.T) {
	t.Parallel()

	// Slower engines first: completion order is the reverse of input order,
	// the outcome order must not be.
	engines := []legend.Engine{
		&testutil.FakeEngine{EngineName: "slow", Delay: 50 * time.Millisecond, Facts: map[string]any{"signal": "bullish"}},
		&testutil.FakeEngine{EngineName: "medium", Delay: 20 * time.Millisecond, Facts: map[string]any{"signal": "bearish"}},
		&testutil.FakeEngine{EngineName: "fast", Facts: map[string]any{"signal": "neutral"}},
	}

	outcomes := scheduler.Run(context.Background(), testRequest, engines, scheduler.Options{})

	require.Len(t, outcomes, 3)
	require.Equal(t, "slow", outcomes[0].Legend)
	require.Equal(t, "medium", outcomes[1].Legend)
	require.Equal(t, "fast", outcomes[2].Legend)
	for _, out := range outcomes {
		require.Equal(t, scheduler.StatusOK, out.Status)
		require.NotNil(t, out.Envelope)
	}
}

func TestRun_FailureIsolation(t *testing.T) {
	t.Parallel()

	engines := []legend.Engine{
		&testutil.FakeEngine{EngineName: "good-1", Facts: map[string]any{"signal": "bullish"}},
		&testutil.FakeEngine{EngineName: "bad", Err: errors.New("exchange unreachable")},
		&testutil.FakeEngine{EngineName: "good-2", Facts: map[string]any{"signal": "bearish"}},
	}

	outcomes := scheduler.Run(context.Background(), testRequest, engines, scheduler.Options{})

	require.Len(t, outcomes, 3)
	require.Equal(t, scheduler.StatusOK, outcomes[0].Status)
	require.Equal(t, "bullish", outcomes[0].Envelope.Facts["signal"])
	require.Equal(t, scheduler.StatusFailed, outcomes[1].Status)
	require.ErrorContains(t, outcomes[1].Err, "exchange unreachable")
	require.Nil(t, outcomes[1].Envelope)
	require.Equal(t, scheduler.StatusOK, outcomes[2].Status)
	require.Equal(t, "bearish", outcomes[2].Envelope.Facts["signal"])
}

func TestRun_PanicCapturedAsFailure(t *testing.T) {
	t.Parallel()

	engines := []legend.Engine{
		&testutil.FakeEngine{EngineName: "steady", Facts: map[string]any{"signal": "neutral"}},
		&testutil.FakeEngine{EngineName: "volatile", PanicMsg: "index out of range"},
	}

	outcomes := scheduler.Run(context.Background(), testRequest, engines, scheduler.Options{})

	require.Equal(t, scheduler.StatusOK, outcomes[0].Status)
	require.Equal(t, scheduler.StatusFailed, outcomes[1].Status)
	require.ErrorContains(t, outcomes[1].Err, "panicked")
	require.ErrorContains(t, outcomes[1].Err, "index out of range")
}

func TestRun_PerEngineTimeout(t *testing.T) {
	t.Parallel()

	engines := []legend.Engine{
		&testutil.FakeEngine{EngineName: "quick", Facts: map[string]any{"signal": "bullish"}},
		&testutil.FakeEngine{EngineName: "stuck", Delay: 5 * time.Second},
	}

	start := time.Now()
	outcomes := scheduler.Run(context.Background(), testRequest, engines, scheduler.Options{
		PerEngineTimeout: 30 * time.Millisecond,
	})

	require.Less(t, time.Since(start), 2*time.Second, "timeout must cut the stuck engine short")
	require.Equal(t, scheduler.StatusOK, outcomes[0].Status)
	require.Equal(t, scheduler.StatusTimedOut, outcomes[1].Status)
	require.ErrorContains(t, outcomes[1].Err, "timed out")
}

func TestRun_CallerCancellationReturnsPromptly(t *testing.T) {
	t.Parallel()

	engines := []legend.Engine{
		&testutil.FakeEngine{EngineName: "done", Facts: map[string]any{"signal": "bullish"}},
		&testutil.FakeEngine{EngineName: "straggler", Delay: 10 * time.Second},
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	outcomes := scheduler.Run(ctx, testRequest, engines, scheduler.Options{})

	require.Less(t, time.Since(start), 2*time.Second, "cancellation must not wait for stragglers")
	require.Len(t, outcomes, 2)
	require.Equal(t, scheduler.StatusOK, outcomes[0].Status)
	require.Equal(t, scheduler.StatusCanceled, outcomes[1].Status)
	require.ErrorIs(t, outcomes[1].Err, context.Canceled)
}

// progressRecorder collects progress updates from concurrently running
// engines.
type progressRecorder struct {
	mu     sync.Mutex
	events []legend.Progress
}

func (r *progressRecorder) Report(p legend.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, p)
}

func (r *progressRecorder) byLegend(name string) []legend.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []legend.Progress
	for _, p := range r.events {
		if p.Legend == name {
			out = append(out, p)
		}
	}
	return out
}

func TestRun_ProgressFromAllEngines(t *testing.T) {
	t.Parallel()

	recorder := &progressRecorder{}
	engines := []legend.Engine{
		&testutil.FakeEngine{EngineName: "a", Stages: []string{"fetch", "compute", "score"}, Facts: map[string]any{"signal": "bullish"}},
		&testutil.FakeEngine{EngineName: "b", Stages: []string{"fetch", "score"}, Facts: map[string]any{"signal": "bearish"}},
	}

	outcomes := scheduler.Run(context.Background(), testRequest, engines, scheduler.Options{Sink: recorder})

	require.Len(t, outcomes, 2)
	require.Len(t, recorder.byLegend("a"), 3)
	require.Len(t, recorder.byLegend("b"), 2)

	// Per-engine ordering survives arbitrary interleaving across engines.
	stagesA := recorder.byLegend("a")
	require.Equal(t, "fetch", stagesA[0].Stage)
	require.Equal(t, "compute", stagesA[1].Stage)
	require.Equal(t, "score", stagesA[2].Stage)
}

// countingObserver records observer notifications.
type countingObserver struct {
	mu   sync.Mutex
	runs map[string]scheduler.Status
}

func (o *countingObserver) ObserveRun(legend string, status scheduler.Status, elapsed time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.runs == nil {
		o.runs = make(map[string]scheduler.Status)
	}
	o.runs[legend] = status
}

func TestRun_ObserverSeesEveryFinishedRun(t *testing.T) {
	t.Parallel()

	obs := &countingObserver{}
	engines := []legend.Engine{
		&testutil.FakeEngine{EngineName: "ok", Facts: map[string]any{"signal": "bullish"}},
		&testutil.FakeEngine{EngineName: "broken", Err: errors.New("boom")},
	}

	scheduler.Run(context.Background(), testRequest, engines, scheduler.Options{Observer: obs})

	obs.mu.Lock()
	defer obs.mu.Unlock()
	require.Equal(t, scheduler.StatusOK, obs.runs["ok"])
	require.Equal(t, scheduler.StatusFailed, obs.runs["broken"])
}

func TestRun_NoEngines(t *testing.T) {
	t.Parallel()
	outcomes := scheduler.Run(context.Background(), testRequest, nil, scheduler.Options{})
	require.Empty(t, outcomes)
}
