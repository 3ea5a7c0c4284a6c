// Package hcl loads pantheon configuration files and translates them into
// the format-agnostic config model.
package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/config"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/ctxlog"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/fsutil"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/schema"
)

// Loader implements config.Loader for HCL files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load implements config.Loader. Each path may be a single .hcl file or a
// directory searched recursively; files merge into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("searching %s for configuration: %w", path, err)
		}
		logger.Debug("Discovered configuration files.", "path", path, "count", len(files))

		for _, filePath := range files {
			parsed, diags := l.parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("parsing %s: %w", filePath, diags)
			}

			var file schema.File
			if diags := gohcl.DecodeBody(parsed.Body, nil, &file); diags.HasErrors() {
				return nil, fmt.Errorf("decoding %s: %w", filePath, diags)
			}

			for _, e := range file.Engines {
				spec, err := l.translateEngine(e)
				if err != nil {
					return nil, fmt.Errorf("engine %q in %s: %w", e.Kind, filePath, err)
				}
				model.Engines = append(model.Engines, spec)
			}
			for _, a := range file.Analyses {
				spec, err := l.translateAnalysis(a)
				if err != nil {
					return nil, fmt.Errorf("analysis %q in %s: %w", a.Name, filePath, err)
				}
				model.Analyses = append(model.Analyses, spec)
			}
		}
	}

	logger.Debug("Configuration loaded.", "engines", len(model.Engines), "analyses", len(model.Analyses))
	return model, nil
}
