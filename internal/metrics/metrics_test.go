package metrics

import (
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/consensus"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/scheduler"
)

func TestObserveRun(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveRun("Dow Theory", scheduler.StatusOK, 120*time.Millisecond)
	m.ObserveRun("Dow Theory", scheduler.StatusOK, 80*time.Millisecond)
	m.ObserveRun("Sentinel Scanner", scheduler.StatusTimedOut, time.Second)

	require.Equal(t, 2.0, promtest.ToFloat64(m.engineRuns.WithLabelValues("Dow Theory", "ok")))
	require.Equal(t, 1.0, promtest.ToFloat64(m.engineRuns.WithLabelValues("Sentinel Scanner", "timed_out")))
	require.Equal(t, 2, promtest.CollectAndCount(m.runDuration, "pantheon_engine_run_duration_seconds"))
}

func TestObserveVerdict(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveVerdict(consensus.Result{Signal: consensus.Bullish, Quality: consensus.QualityHigh})
	m.ObserveVerdict(consensus.Result{Signal: consensus.Bullish, Quality: consensus.QualityHigh})
	m.ObserveVerdict(consensus.Result{Signal: consensus.InsufficientData, Quality: consensus.QualityInsufficient})

	require.Equal(t, 2.0, promtest.ToFloat64(m.verdicts.WithLabelValues("bullish", "high")))
	require.Equal(t, 1.0, promtest.ToFloat64(m.verdicts.WithLabelValues("insufficient_data", "insufficient")))
}

func TestRegistryIsolation(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	a.ObserveRun("x", scheduler.StatusOK, time.Millisecond)

	families, err := b.Registry().Gather()
	require.NoError(t, err)
	for _, fam := range families {
		require.NotEqual(t, "pantheon_engine_runs_total", fam.GetName(),
			"a run observed on one instance must not leak into another registry")
	}
}
