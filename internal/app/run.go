package app

import (
	"context"
	"fmt"
	"time"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/config"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/ctxlog"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/pantheon"
)

// Run executes every configured analysis in order and prints each result.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.OpsPort > 0 {
		a.startOpsServer(appConfig.OpsPort)
	}

	if len(a.model.Analyses) == 0 {
		a.logger.Warn("No analysis blocks found in configuration, nothing to run.")
		return nil
	}

	for _, spec := range a.model.Analyses {
		if err := a.runAnalysis(ctx, spec); err != nil {
			return fmt.Errorf("analysis %q failed: %w", spec.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runAnalysis executes one analysis block end to end.
func (a *App) runAnalysis(ctx context.Context, spec *config.AnalysisSpec) error {
	a.logger.Info("Starting analysis.",
		"analysis", spec.Name,
		"symbol", spec.Symbol,
		"timeframe", spec.Timeframe,
	)

	req := legend.Request{
		Symbol:    spec.Symbol,
		Timeframe: spec.Timeframe,
		AsOf:      time.Now(),
	}
	sink := legend.ProgressFunc(func(p legend.Progress) {
		a.logger.Debug("Engine progress.",
			"legend", p.Legend,
			"stage", p.Stage,
			"percent", p.Percent,
			"note", p.Note,
		)
	})

	result, err := a.pantheon.AnalyzeWithConsensus(ctx, req, pantheon.AnalyzeOptions{
		EngineNames:             spec.Engines,
		MinConsensusReliability: spec.MinReliability,
		DisableConsensus:        !spec.Consensus,
		Sink:                    sink,
		PerEngineTimeout:        spec.PerEngineTimeout,
	})
	if err != nil {
		return err
	}

	if result.Consensus != nil {
		a.metrics.ObserveVerdict(*result.Consensus)
		a.logger.Info("Analysis finished.",
			"analysis", spec.Name,
			"signal", string(result.Consensus.Signal),
			"quality", string(result.Consensus.Quality),
			"successful", result.SuccessfulEngines,
			"total", result.TotalEngines,
		)
	} else {
		a.logger.Info("Analysis finished.",
			"analysis", spec.Name,
			"successful", result.SuccessfulEngines,
			"total", result.TotalEngines,
		)
	}

	return a.printResult(spec, result)
}
