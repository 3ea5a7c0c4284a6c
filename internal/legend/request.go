package legend

import "time"

// Request identifies the subject of one analysis call: a symbol, a timeframe
// label, and the reference timestamp the analysis is anchored to. A Request is
// constructed once per call and never mutated; the scheduler hands every
// engine its own copy.
type Request struct {
	Symbol    string
	Timeframe string
	AsOf      time.Time
}
