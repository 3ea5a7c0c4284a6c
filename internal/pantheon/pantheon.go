// Package pantheon is the facade tying the registry, scheduler, and
// consensus analyzer together into the operations callers actually use.
package pantheon

import (
	"context"
	"fmt"
	"time"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/consensus"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/ctxlog"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/registry"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/scheduler"
)

// Pantheon coordinates one registry of engines. Instances are explicit; there
// is no process-wide default.
type Pantheon struct {
	registry *registry.Registry
	observer scheduler.Observer
}

// Option configures a Pantheon instance.
type Option func(*Pantheon)

// WithObserver wires an observer (e.g. metrics) into every scheduled run.
func WithObserver(obs scheduler.Observer) Option {
	return func(p *Pantheon) { p.observer = obs }
}

// New creates a Pantheon around an existing registry.
func New(reg *registry.Registry, opts ...Option) *Pantheon {
	p := &Pantheon{registry: reg}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the underlying engine registry.
func (p *Pantheon) Registry() *registry.Registry {
	return p.registry
}

// RunOptions tunes a RunAll call.
type RunOptions struct {
	// EngineNames restricts the run to the named engines, in the given order.
	// Empty means every registered engine in registration order.
	EngineNames []string
	// Sink receives progress updates from all engines. May be nil.
	Sink legend.ProgressSink
	// PerEngineTimeout bounds each engine's run. Zero means no timeout.
	PerEngineTimeout time.Duration
}

// RunAll executes the selected engines concurrently and returns one outcome
// per engine in input order. An unknown name in EngineNames is a
// configuration error, reported before any engine is scheduled.
func (p *Pantheon) RunAll(ctx context.Context, req legend.Request, opts RunOptions) ([]scheduler.Outcome, error) {
	engines, err := p.resolve(opts.EngineNames)
	if err != nil {
		return nil, err
	}
	outcomes := scheduler.Run(ctx, req, engines, scheduler.Options{
		Sink:             opts.Sink,
		PerEngineTimeout: opts.PerEngineTimeout,
		Observer:         p.observer,
	})
	return outcomes, nil
}

// AnalyzeOptions tunes an AnalyzeWithConsensus call.
type AnalyzeOptions struct {
	// EngineNames restricts the run to the named engines. Empty means all.
	EngineNames []string
	// MinConsensusReliability drops engines below the floor from the
	// consensus aggregation. They still run and still appear in Outcomes.
	MinConsensusReliability legend.ReliabilityLevel
	// DisableConsensus skips the aggregation step; the result then carries
	// only per-engine outcomes.
	DisableConsensus bool
	// Sink receives progress updates from all engines. May be nil.
	Sink legend.ProgressSink
	// PerEngineTimeout bounds each engine's run. Zero means no timeout.
	PerEngineTimeout time.Duration
}

// AnalysisResult is the full product of one analysis call: every per-engine
// outcome plus the optional aggregated verdict and timing metadata.
type AnalysisResult struct {
	Outcomes  []scheduler.Outcome
	Consensus *consensus.Result

	TotalEngines      int
	SuccessfulEngines int
	Elapsed           time.Duration
}

// AnalyzeWithConsensus runs the selected engines and aggregates their
// envelopes into one consensus verdict. Per-engine failures never abort the
// call; the only error it returns itself is a configuration error raised
// before scheduling begins.
func (p *Pantheon) AnalyzeWithConsensus(ctx context.Context, req legend.Request, opts AnalyzeOptions) (*AnalysisResult, error) {
	logger := ctxlog.FromContext(ctx)

	engines, err := p.resolve(opts.EngineNames)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	outcomes := scheduler.Run(ctx, req, engines, scheduler.Options{
		Sink:             opts.Sink,
		PerEngineTimeout: opts.PerEngineTimeout,
		Observer:         p.observer,
	})

	result := &AnalysisResult{
		Outcomes:     outcomes,
		TotalEngines: len(outcomes),
		Elapsed:      time.Since(start),
	}

	reliabilities := make(map[string]legend.ReliabilityLevel, len(engines))
	for _, e := range engines {
		reliabilities[e.Name()] = e.Reliability()
	}

	var opinions []consensus.Opinion
	for _, out := range outcomes {
		if !out.OK() {
			continue
		}
		result.SuccessfulEngines++
		opinions = append(opinions, consensus.Opinion{
			Legend:      out.Legend,
			Reliability: reliabilities[out.Legend],
			Facts:       out.Envelope.Facts,
		})
	}

	if !opts.DisableConsensus {
		verdict := consensus.Analyze(opinions, consensus.Options{
			MinReliability: opts.MinConsensusReliability,
		})
		result.Consensus = &verdict
		logger.Debug("Consensus computed.",
			"signal", string(verdict.Signal),
			"quality", string(verdict.Quality),
			"engines", verdict.EnginesAnalyzed,
		)
	}

	logger.Debug("Analysis complete.",
		"total", result.TotalEngines,
		"successful", result.SuccessfulEngines,
		"elapsed", result.Elapsed,
	)
	return result, nil
}

// QuickConsensus is a convenience wrapper: it analyzes the symbol with the
// full registered engine set, anchored at now, and returns just the verdict.
// The timeframe defaults to "1D" when empty.
func (p *Pantheon) QuickConsensus(ctx context.Context, symbol, timeframe string, minReliability legend.ReliabilityLevel) (*consensus.Result, error) {
	if timeframe == "" {
		timeframe = "1D"
	}
	req := legend.Request{Symbol: symbol, Timeframe: timeframe, AsOf: time.Now()}
	result, err := p.AnalyzeWithConsensus(ctx, req, AnalyzeOptions{
		MinConsensusReliability: minReliability,
	})
	if err != nil {
		return nil, err
	}
	return result.Consensus, nil
}

// resolve maps explicit engine names to engines, or falls back to the full
// registry snapshot in registration order.
func (p *Pantheon) resolve(names []string) ([]legend.Engine, error) {
	if len(names) == 0 {
		return p.registry.Snapshot(), nil
	}
	engines, err := p.registry.Lookup(names...)
	if err != nil {
		return nil, fmt.Errorf("resolving engine set: %w", err)
	}
	return engines, nil
}
