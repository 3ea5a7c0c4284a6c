package consensus

import "strings"

// signalFields is the fixed precedence list of fact names recognized as "the"
// directional signal. The first field present in an envelope's facts wins;
// an envelope with none of them contributes a neutral score with zero
// confidence, which excludes it from the weighted sum.
var signalFields = []string{
	"signal",
	"position_bias",
	"primary_trend",
	"market_phase",
	"momentum_state",
}

// confidenceFields is the fixed precedence list of fact names recognized as a
// confidence reading.
var confidenceFields = []string{
	"confidence",
	"confidence_score",
	"strength",
	"trend_strength",
	"quality_score",
}

// signalVocabulary maps categorical signal values to scores in [-1, 1]. The
// Wyckoff phase terms map onto the same scale as the directional terms.
var signalVocabulary = map[string]float64{
	"strong_bullish": 0.85,
	"markup":         0.85,
	"bullish":        0.5,
	"accumulation":   0.5,
	"neutral":        0,
	"bearish":        -0.5,
	"distribution":   -0.5,
	"strong_bearish": -0.85,
	"markdown":       -0.85,
}

// extraction is one envelope's standardized reading: a directional score and
// a confidence, both ready for weighting.
type extraction struct {
	score      float64
	confidence float64
	recognized bool
}

// extract inspects an envelope's facts and produces its standardized signal.
// Unrecognized schemas are not an error: they yield a zero-confidence neutral
// reading.
func extract(facts map[string]any) extraction {
	score, ok := extractScore(facts)
	if !ok {
		return extraction{}
	}
	return extraction{
		score:      score,
		confidence: extractConfidence(facts),
		recognized: true,
	}
}

// extractScore finds the first recognized signal field and maps its value to
// a score in [-1, 1].
func extractScore(facts map[string]any) (float64, bool) {
	for _, field := range signalFields {
		raw, present := facts[field]
		if !present {
			continue
		}
		switch v := raw.(type) {
		case string:
			if score, known := signalVocabulary[strings.ToLower(strings.TrimSpace(v))]; known {
				return score, true
			}
		default:
			if f, numeric := asFloat(raw); numeric {
				return clamp(f, -1, 1), true
			}
		}
		// The field was present but carried an unknown value. Precedence
		// stops here: the envelope has no recognizable signal.
		return 0, false
	}
	return 0, false
}

// extractConfidence finds the first recognized confidence field, normalizing
// percent-scale values. Absence defaults to a mid reading of 0.5; callers
// only reach this once a valid signal field was found.
func extractConfidence(facts map[string]any) float64 {
	for _, field := range confidenceFields {
		raw, present := facts[field]
		if !present {
			continue
		}
		f, numeric := asFloat(raw)
		if !numeric {
			continue
		}
		if f > 1 {
			// Engines like the Dow demo report confidence on a 0-100 scale.
			f = f / 100
		}
		return clamp(f, 0, 1)
	}
	return 0.5
}

// asFloat widens any numeric fact value to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
