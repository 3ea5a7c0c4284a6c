// Package config defines the format-agnostic model of a pantheon
// configuration: which engines to construct and which analyses to run.
// Format-specific loaders (currently HCL) translate their syntax into this
// model, keeping the rest of the application independent of the input format.
package config
