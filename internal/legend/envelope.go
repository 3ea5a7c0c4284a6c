package legend

import "time"

// Envelope is the standard unit produced by every engine run. The Facts map
// is intentionally open-ended: each engine publishes whatever fields its
// method produces, and the consensus analyzer extracts standardized signals
// from them by field-name precedence. An Envelope is owned by the engine that
// created it and is read-only afterward.
type Envelope struct {
	// Legend is the name of the engine that produced this envelope.
	Legend string
	// Timeframe echoes the request's timeframe label.
	Timeframe string
	// At is the reference timestamp the analysis was anchored to.
	At time.Time
	// Facts maps fact names to values. Schema is engine-specific.
	Facts map[string]any
	// Quality describes how trustworthy the underlying data was.
	Quality QualityMeta
}

// QualityMeta carries an engine's self-reported data quality. Every field is
// a pointer: nil means "unknown", which is not the same as zero.
type QualityMeta struct {
	// SampleSize is the number of data points the analysis covered.
	SampleSize *float64
	// FreshnessSec is the age of the newest data point, in seconds.
	FreshnessSec *float64
	// DataCompleteness is the fraction of expected data present, 0..1.
	DataCompleteness *float64
	// FalsePositiveRisk is the engine's declared false-positive rate, 0..1.
	FalsePositiveRisk *float64
	// ManipulationSensitivity is how easily the method is gamed, 0..1.
	ManipulationSensitivity *float64
	// ValidationYears is how many years of history the method was validated on.
	ValidationYears *float64
}

// Float is a convenience for building optional QualityMeta fields.
func Float(v float64) *float64 { return &v }
