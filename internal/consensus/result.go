package consensus

import "github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"

// Signal is the aggregated directional verdict, derived from a continuous
// weighted score in [-1, 1].
type Signal string

const (
	StrongBearish    Signal = "strong_bearish"
	Bearish          Signal = "bearish"
	Neutral          Signal = "neutral"
	Bullish          Signal = "bullish"
	StrongBullish    Signal = "strong_bullish"
	InsufficientData Signal = "insufficient_data"
)

// Quality is a coarse confidence-in-the-consensus grade derived from engine
// count, average reliability, and confidence.
type Quality string

const (
	QualityHigh         Quality = "high"
	QualityMedium       Quality = "medium"
	QualityLow          Quality = "low"
	QualityInsufficient Quality = "insufficient"
)

// Contribution records how one engine entered the weighted aggregation.
type Contribution struct {
	// Signal is the engine's extracted directional score in [-1, 1].
	Signal float64 `json:"signal"`
	// Confidence is the engine's extracted confidence in [0, 1].
	Confidence float64 `json:"confidence"`
	// Weight is reliability weight x confidence.
	Weight float64 `json:"weight"`
	// Reliability is the engine's declared level.
	Reliability legend.ReliabilityLevel `json:"-"`
	// Included reports whether the engine entered the weighted sum. Engines
	// with zero weight or below the reliability floor stay visible here but
	// are excluded from the aggregation.
	Included bool `json:"included"`
}

// Result is the single aggregated verdict produced from N envelopes.
type Result struct {
	Signal     Signal  `json:"signal"`
	Confidence float64 `json:"confidence"`
	Strength   float64 `json:"strength"`
	Quality    Quality `json:"quality"`

	// EnginesAnalyzed counts the engines that entered the weighted sum.
	EnginesAnalyzed int `json:"engines_analyzed"`
	EnginesBullish  int `json:"engines_bullish"`
	EnginesBearish  int `json:"engines_bearish"`
	EnginesNeutral  int `json:"engines_neutral"`

	// ReliabilityAverage is the mean reliability weight over included engines.
	ReliabilityAverage float64 `json:"reliability_average"`
	// WeightedScore is the reliability-and-confidence weighted mean score.
	WeightedScore float64 `json:"weighted_score"`

	// Contributions maps engine name to its contribution record.
	Contributions map[string]Contribution `json:"engine_contributions"`
}
