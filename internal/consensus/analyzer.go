// Package consensus reduces the envelopes of N successful engine runs into a
// single reliability-weighted verdict with a quality grade.
package consensus

import (
	"math"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
)

// Opinion pairs one successful envelope's facts with the declared reliability
// of the engine that produced them.
type Opinion struct {
	Legend      string
	Reliability legend.ReliabilityLevel
	Facts       map[string]any
}

// Options tunes a single Analyze call.
type Options struct {
	// MinReliability is a post-scheduling floor: opinions from engines below
	// it are dropped from the aggregation and from the contribution map. The
	// zero value (Experimental) admits every engine.
	MinReliability legend.ReliabilityLevel
}

// Bucketing thresholds for the aggregated weighted score.
const (
	strongThreshold = 0.7
	biasThreshold   = 0.3
)

// Analyze computes the weighted consensus over the given opinions.
//
// Each opinion's weight is its reliability weight multiplied by its extracted
// confidence. Opinions with zero weight stay visible in the contribution map
// but are excluded from the weighted average's denominator. If no opinion
// carries weight, the result is insufficient_data regardless of engine count.
func Analyze(opinions []Opinion, opts Options) Result {
	contributions := make(map[string]Contribution, len(opinions))

	var (
		sumWeight      float64
		sumWeighted    float64
		sumReliability float64
		included       int
		bullish        int
		bearish        int
		neutral        int
	)

	for _, op := range opinions {
		if op.Reliability < opts.MinReliability {
			// Below the floor: visible in per-engine results upstream, absent
			// from the contribution map here.
			continue
		}

		ex := extract(op.Facts)
		weight := op.Reliability.Weight() * ex.confidence
		if !ex.recognized {
			weight = 0
		}

		contributions[op.Legend] = Contribution{
			Signal:      ex.score,
			Confidence:  ex.confidence,
			Weight:      weight,
			Reliability: op.Reliability,
			Included:    weight > 0,
		}
		if weight <= 0 {
			continue
		}

		included++
		sumWeight += weight
		sumWeighted += ex.score * weight
		sumReliability += op.Reliability.Weight()

		switch {
		case ex.score >= biasThreshold:
			bullish++
		case ex.score <= -biasThreshold:
			bearish++
		default:
			neutral++
		}
	}

	if included == 0 || sumWeight == 0 {
		return Result{
			Signal:        InsufficientData,
			Quality:       QualityInsufficient,
			Contributions: contributions,
		}
	}

	weightedScore := sumWeighted / sumWeight
	confidence := sumWeight / float64(included)
	reliabilityAvg := sumReliability / float64(included)

	return Result{
		Signal:             bucket(weightedScore),
		Confidence:         confidence,
		Strength:           math.Abs(weightedScore),
		Quality:            grade(included, reliabilityAvg, confidence),
		EnginesAnalyzed:    included,
		EnginesBullish:     bullish,
		EnginesBearish:     bearish,
		EnginesNeutral:     neutral,
		ReliabilityAverage: reliabilityAvg,
		WeightedScore:      weightedScore,
		Contributions:      contributions,
	}
}

// bucket maps a weighted score in [-1, 1] to its categorical signal.
func bucket(score float64) Signal {
	switch {
	case score >= strongThreshold:
		return StrongBullish
	case score >= biasThreshold:
		return Bullish
	case score <= -strongThreshold:
		return StrongBearish
	case score <= -biasThreshold:
		return Bearish
	default:
		return Neutral
	}
}

// grade derives the coarse quality label from engine count, average
// reliability weight, and consensus confidence.
func grade(included int, reliabilityAvg, confidence float64) Quality {
	switch {
	case included >= 3 && reliabilityAvg >= 0.7 && confidence >= 0.7:
		return QualityHigh
	case included >= 2 && reliabilityAvg >= 0.5 && confidence >= 0.5:
		return QualityMedium
	default:
		return QualityLow
	}
}
