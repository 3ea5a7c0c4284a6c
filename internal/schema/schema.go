// Package schema holds the HCL-specific structures a pantheon file decodes
// into before translation to the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Params represents the content of the free-form 'params' block within an
// engine block. Attributes are engine-specific and evaluated lazily.
type Params struct {
	Body hcl.Body `hcl:",remain"`
}

// Engine represents an `engine` block: one engine instance to construct. The
// label names the registered factory kind (e.g. "dow", "sentinel").
type Engine struct {
	Kind   string  `hcl:"kind,label"`
	Params *Params `hcl:"params,block"`
}

// Analysis represents an `analysis` block: one analysis call to execute.
type Analysis struct {
	Name             string   `hcl:"name,label"`
	Symbol           string   `hcl:"symbol"`
	Timeframe        string   `hcl:"timeframe,optional"`
	Engines          []string `hcl:"engines,optional"`
	MinReliability   string   `hcl:"min_reliability,optional"`
	PerEngineTimeout string   `hcl:"per_engine_timeout,optional"`
	Consensus        *bool    `hcl:"consensus,optional"`
}

// File represents the top-level structure of a pantheon configuration file.
type File struct {
	Engines  []*Engine   `hcl:"engine,block"`
	Analyses []*Analysis `hcl:"analysis,block"`
	Body     hcl.Body    `hcl:",remain"`
}
