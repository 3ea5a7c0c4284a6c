// Package dow is a demo Dow Theory engine. It produces structured sample
// facts rather than real trend analysis: it exists to show the shape of a
// traditional engine (staged progress, envelope facts, quality metadata) and
// to give the framework a runnable default.
package dow

import (
	"context"
	"fmt"
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
// "stage_delay" (duration string) to stretch the simulated work phases.
func New(params map[string]any) *Engine {
	return &Engine{stageDelay: stageDelay(params)}
}

// Name implements legend.Engine.
func (e *Engine) Name() string { return "Dow Theory" }

// Reliability implements legend.Engine.
func (e *Engine) Reliability() legend.ReliabilityLevel { return legend.High }

// Type implements legend.Engine.
func (e *Engine) Type() legend.EngineType { return legend.Traditional }

// Run implements legend.Engine. The flow mirrors a real engine: a fetch
// phase, a computation phase, and a scoring phase, each reporting progress.
func (e *Engine) Run(ctx context.Context, req legend.Request, sink legend.ProgressSink) (*legend.Envelope, error) {
	logger := ctxlog.FromContext(ctx).With("legend", e.Name(), "symbol", req.Symbol)
	logger.Debug("Run started.")

	stages := []struct {
		stage   string
		percent float64
		note    string
	}{
		{"fetch", 20, "Fetching market data"},
		{"compute", 60, "Analyzing trends"},
		{"score", 100, "Generating scores"},
	}
	for _, s := range stages {
		report(sink, e.Name(), s.stage, s.percent, s.note)
		if err := sleep(ctx, e.stageDelay); err != nil {
			return nil, err
		}
	}

	logger.Debug("Run finished.")
	return &legend.Envelope{
		Legend:    e.Name(),
		Timeframe: req.Timeframe,
		At:        req.AsOf,
		Facts: map[string]any{
			"primary_trend":       "bullish",
			"secondary_trend":     "corrective",
			"trend_strength":      0.75,
			"confirmation_status": "confirmed",
			"volume_confirmation": true,
			"support_level":       150.25,
			"resistance_level":    175.80,
			"trend_duration_days": 45,
			"signal_quality":      "high",
			"risk_level":          "moderate",
			"confidence_score":    87.5,
			"next_expected_move":  "upward",
			"analysis_notes":      fmt.Sprintf("Dow analysis for %s on %s timeframe", req.Symbol, req.Timeframe),
		},
		Quality: legend.QualityMeta{
			SampleSize:       legend.Float(1000),
			FreshnessSec:     legend.Float(60),
			DataCompleteness: legend.Float(0.98),
		},
	}, nil
}

func report(sink legend.ProgressSink, name, stage string, percent float64, note string) {
	if sink == nil {
		return
	}
	sink.Report(legend.Progress{Legend: name, Stage: stage, Percent: percent, Note: note})
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func stageDelay(params map[string]any) time.Duration {
	raw, ok := params["stage_delay"].(string)
	if !ok {
		return defaultStageDelay
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return defaultStageDelay
	}
	return d
}
