// Package wyckoff is a demo Wyckoff Method engine. Like the Dow demo it
// returns structured sample facts, here using the Wyckoff phase vocabulary
// the consensus analyzer recognizes (accumulation, markup, distribution,
// markdown).
package wyckoff

import (
	"context"
	"time"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/ctxlog"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
)

const defaultStageDelay = 10 * time.Millisecond

// Engine implements legend.Engine.
type Engine struct {
	stageDelay time.Duration
}

// New builds the engine from its configuration params. Recognized params:
// "stage_delay" (duration string).
func New(params map[string]any) *Engine {
	e := &Engine{stageDelay: defaultStageDelay}
	if raw, ok := params["stage_delay"].(string); ok {
		if d, err := time.ParseDuration(raw); err == nil {
			e.stageDelay = d
		}
	}
	return e
}

// Name implements legend.Engine.
func (e *Engine) Name() string { return "Wyckoff Method" }

// Reliability implements legend.Engine.
func (e *Engine) Reliability() legend.ReliabilityLevel { return legend.High }

// Type implements legend.Engine.
func (e *Engine) Type() legend.EngineType { return legend.Traditional }

// Run implements legend.Engine.
func (e *Engine) Run(ctx context.Context, req legend.Request, sink legend.ProgressSink) (*legend.Envelope, error) {
	logger := ctxlog.FromContext(ctx).With("legend", e.Name(), "symbol", req.Symbol)
	logger.Debug("Run started.")

	stages := []struct {
		stage   string
		percent float64
		note    string
	}{
		{"fetch", 25, "Fetching volume data"},
		{"compute", 70, "Analyzing accumulation/distribution"},
		{"score", 100, "Identifying market phases"},
	}
	for _, s := range stages {
		if sink != nil {
			sink.Report(legend.Progress{Legend: e.Name(), Stage: s.stage, Percent: s.percent, Note: s.note})
		}
		timer := time.NewTimer(e.stageDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	logger.Debug("Run finished.")
	return &legend.Envelope{
		Legend:    e.Name(),
		Timeframe: req.Timeframe,
		At:        req.AsOf,
		Facts: map[string]any{
			"market_phase":                "accumulation",
			"volume_spread_analysis":      "bullish",
			"supply_demand_balance":       "demand_exceeds_supply",
			"composite_operator_activity": "accumulating",
			"phase_progress":              0.65,
			"wyckoff_signal":              "spring_test_complete",
			"effort_vs_result":            "harmonious",
			"background_conditions":       "favorable",
		},
		Quality: legend.QualityMeta{
			SampleSize:       legend.Float(800),
			FreshnessSec:     legend.Float(45),
			DataCompleteness: legend.Float(0.95),
		},
	}, nil
}
