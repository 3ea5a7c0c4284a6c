// Package registry holds the set of engines available to a single
// application instance, keyed by unique name. Reads go through immutable
// snapshots so execution never observes a registration in progress.
package registry

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
)

// DuplicateNameError is returned when registering an engine whose name is
// already taken. It is fatal to that registration call only.
type DuplicateNameError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("engine with name %q already registered", e.Name)
}

// UnknownEngineError is returned by Lookup when a requested name is not
// present in the registry.
type UnknownEngineError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("engine %q not found in registry", e.Name)
}

// Registry holds engines in registration order. It is safe for concurrent
// use: registration copies the backing slice, so snapshots already handed
// out are never mutated.
type Registry struct {
	mu      sync.Mutex
	byName  map[string]legend.Engine
	ordered []legend.Engine
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{byName: make(map[string]legend.Engine)}
}

// Register adds an engine under its unique name. Registration order is
// preserved by Snapshot and the filter methods.
func (r *Registry) Register(e legend.Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := e.Name()
	if _, exists := r.byName[name]; exists {
		return &DuplicateNameError{Name: name}
	}
	slog.Debug("Registering engine.", "name", name, "reliability", e.Reliability().String(), "type", string(e.Type()))
	r.byName[name] = e

	// Copy-on-write keeps previously returned snapshots immutable.
	next := make([]legend.Engine, len(r.ordered), len(r.ordered)+1)
	copy(next, r.ordered)
	r.ordered = append(next, e)
	return nil
}

// Snapshot returns the registered engines in registration order. The returned
// slice is never mutated by later registrations.
func (r *Registry) Snapshot() []legend.Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ordered
}

// Lookup resolves the given names into engines, preserving the order of the
// names argument. A missing name yields an UnknownEngineError.
func (r *Registry) Lookup(names ...string) ([]legend.Engine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	engines := make([]legend.Engine, 0, len(names))
	for _, name := range names {
		e, ok := r.byName[name]
		if !ok {
			return nil, &UnknownEngineError{Name: name}
		}
		engines = append(engines, e)
	}
	return engines, nil
}

// FilterByType returns the registered engines of the given type, in
// registration order.
func (r *Registry) FilterByType(t legend.EngineType) []legend.Engine {
	var out []legend.Engine
	for _, e := range r.Snapshot() {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

// FilterByMinReliability returns the registered engines at or above the given
// reliability level, in registration order.
func (r *Registry) FilterByMinReliability(min legend.ReliabilityLevel) []legend.Engine {
	var out []legend.Engine
	for _, e := range r.Snapshot() {
		if e.Reliability() >= min {
			out = append(out, e)
		}
	}
	return out
}
