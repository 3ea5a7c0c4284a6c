package hcl

import (
	"fmt"
	"time"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/config"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/schema"
)

// translateEngine converts an HCL engine block into the agnostic model,
// evaluating its free-form params into plain Go values.
func (l *Loader) translateEngine(e *schema.Engine) (*config.EngineSpec, error) {
	params := make(map[string]any)
	if e.Params != nil && e.Params.Body != nil {
		attrs, diags := e.Params.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("reading params: %w", diags)
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("evaluating param %q: %w", name, diags)
			}
			goVal, err := ctyToGo(val)
			if err != nil {
				return nil, fmt.Errorf("converting param %q: %w", name, err)
			}
			params[name] = goVal
		}
	}
	return &config.EngineSpec{Kind: e.Kind, Params: params}, nil
}

// translateAnalysis converts an HCL analysis block into the agnostic model,
// applying defaults and validating enumerated fields.
func (l *Loader) translateAnalysis(a *schema.Analysis) (*config.AnalysisSpec, error) {
	spec := &config.AnalysisSpec{
		Name:      a.Name,
		Symbol:    a.Symbol,
		Timeframe: a.Timeframe,
		Engines:   a.Engines,
		Consensus: true,
	}
	if spec.Timeframe == "" {
		spec.Timeframe = "1D"
	}
	if a.Consensus != nil {
		spec.Consensus = *a.Consensus
	}
	if a.MinReliability != "" {
		level, err := legend.ParseReliability(a.MinReliability)
		if err != nil {
			return nil, err
		}
		spec.MinReliability = level
	}
	if a.PerEngineTimeout != "" {
		d, err := time.ParseDuration(a.PerEngineTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid per_engine_timeout: %w", err)
		}
		spec.PerEngineTimeout = d
	}
	return spec, nil
}
