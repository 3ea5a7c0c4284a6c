// Package legend defines the contracts shared by every analysis engine: the
// request and envelope data model, reliability and type classifications, the
// progress reporting sink, and the Engine interface itself. Everything else
// in the repository is built in terms of these types.
package legend
