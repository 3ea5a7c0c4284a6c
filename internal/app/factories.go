package app

import (
	"fmt"

	"github.com/SpartanDigitalDotNet/pantheon-legends/engines/dow"
	"github.com/SpartanDigitalDotNet/pantheon-legends/engines/sentinel"
	"github.com/SpartanDigitalDotNet/pantheon-legends/engines/wyckoff"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
)

// EngineFactory builds one engine instance from its configuration params.
type EngineFactory func(params map[string]any) (legend.Engine, error)

// coreFactories is the definitive list of engine kinds compiled into the
// binary, keyed by the `engine` block label used in configuration.
var coreFactories = map[string]EngineFactory{
	"dow": func(params map[string]any) (legend.Engine, error) {
		return dow.New(params), nil
	},
	"wyckoff": func(params map[string]any) (legend.Engine, error) {
		return wyckoff.New(params), nil
	},
	"sentinel": func(params map[string]any) (legend.Engine, error) {
		return sentinel.New(params)
	},
}

// buildEngine resolves a factory kind and constructs the engine.
func buildEngine(kind string, params map[string]any) (legend.Engine, error) {
	factory, ok := coreFactories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown engine kind %q", kind)
	}
	return factory(params)
}
