package legend

// Progress is a single progress update emitted by an engine mid-run.
type Progress struct {
	// Legend is the name of the reporting engine.
	Legend string
	// Stage is a short label for the current phase, e.g. "fetch" or "score".
	Stage string
	// Percent is the engine's own estimate of completion, 0..100.
	Percent float64
	// Note is an optional human-readable detail.
	Note string
}

// ProgressSink receives progress updates. Engines run concurrently and each
// invokes the sink from its own goroutine, so implementations must be safe
// for concurrent use and should return quickly; a slow sink stalls only the
// engine calling it, never its siblings.
type ProgressSink interface {
	Report(p Progress)
}

// ProgressFunc adapts a plain function to the ProgressSink interface.
type ProgressFunc func(p Progress)

// Report implements ProgressSink.
func (f ProgressFunc) Report(p Progress) { f(p) }
