package app

import (
	"encoding/json"
	"fmt"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/config"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/consensus"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/pantheon"
)

// outcomeSummary is the JSON shape of one per-engine outcome.
type outcomeSummary struct {
	Legend    string         `json:"legend"`
	Status    string         `json:"status"`
	ElapsedMS float64        `json:"elapsed_ms"`
	Error     string         `json:"error,omitempty"`
	Facts     map[string]any `json:"facts,omitempty"`
}

// resultSummary is the JSON shape of one analysis result.
type resultSummary struct {
	Analysis          string            `json:"analysis"`
	Symbol            string            `json:"symbol"`
	Timeframe         string            `json:"timeframe"`
	TotalEngines      int               `json:"total_engines"`
	SuccessfulEngines int               `json:"successful_engines"`
	ElapsedMS         float64           `json:"elapsed_ms"`
	Engines           []outcomeSummary  `json:"engine_results"`
	Consensus         *consensus.Result `json:"consensus,omitempty"`
}

// printResult writes one analysis result to the application's output writer
// as indented JSON.
func (a *App) printResult(spec *config.AnalysisSpec, result *pantheon.AnalysisResult) error {
	summary := resultSummary{
		Analysis:          spec.Name,
		Symbol:            spec.Symbol,
		Timeframe:         spec.Timeframe,
		TotalEngines:      result.TotalEngines,
		SuccessfulEngines: result.SuccessfulEngines,
		ElapsedMS:         float64(result.Elapsed.Microseconds()) / 1000,
		Consensus:         result.Consensus,
	}
	for _, out := range result.Outcomes {
		s := outcomeSummary{
			Legend:    out.Legend,
			Status:    out.Status.String(),
			ElapsedMS: float64(out.Elapsed.Microseconds()) / 1000,
		}
		if out.Err != nil {
			s.Error = out.Err.Error()
		}
		if out.Envelope != nil {
			s.Facts = out.Envelope.Facts
		}
		summary.Engines = append(summary.Engines, s)
	}

	encoded, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(a.outW, string(encoded))
	return nil
}
