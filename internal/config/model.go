package config

import (
	"time"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
)

// Model is the unified representation of the entire configuration: engine
// instantiations plus the analyses to execute against them.
type Model struct {
	Engines  []*EngineSpec
	Analyses []*AnalysisSpec
}

// EngineSpec describes one engine to construct: the factory kind plus its
// free-form params. The engine implementation itself declares its name,
// reliability, and type.
type EngineSpec struct {
	Kind   string
	Params map[string]any
}

// AnalysisSpec describes one analysis call.
type AnalysisSpec struct {
	// Name labels the analysis in logs and output.
	Name string
	// Symbol is the subject identifier.
	Symbol string
	// Timeframe is the timeframe label, defaulted to "1D" by the loader.
	Timeframe string
	// Engines optionally restricts the run to the named engines.
	Engines []string
	// MinReliability is the consensus reliability floor.
	MinReliability legend.ReliabilityLevel
	// PerEngineTimeout bounds each engine's run. Zero means no timeout.
	PerEngineTimeout time.Duration
	// Consensus toggles the aggregation step. Defaults to true.
	Consensus bool
}
