package legend

import "context"

// Engine is the capability contract every pluggable analysis engine
// implements. Name must be unique within a registry, and Reliability and
// Type are immutable for the engine's lifetime.
//
// Run produces one Envelope for the request or returns an error. The sink
// may be nil when the caller did not ask for progress. Run must honor ctx
// cancellation: the scheduler cancels an engine's context on timeout or when
// the overall call is canceled.
type Engine interface {
	Name() string
	Reliability() ReliabilityLevel
	Type() EngineType
	Run(ctx context.Context, req Request, sink ProgressSink) (*Envelope, error)
}
