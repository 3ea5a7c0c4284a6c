// Package app encapsulates the application's dependencies, configuration,
// and lifecycle: logger construction, configuration loading, engine
// registration, analysis execution, and the ops HTTP server.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/config"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/ctxlog"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/metrics"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/pantheon"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/registry"
)

// App encapsulates one application instance with its own isolated logger,
// registry, and metrics.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	model    *config.Model
	pantheon *pantheon.Pantheon
	metrics  *metrics.Metrics
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance. A failure to load configuration or construct a
// configured engine is a fatal startup error and panics; the CLI entrypoint
// recovers and reports it.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.PantheonPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	reg := registry.New()
	for _, spec := range model.Engines {
		engine, err := buildEngine(spec.Kind, spec.Params)
		if err != nil {
			panic(fmt.Errorf("failed to construct engine: %w", err))
		}
		if err := reg.Register(engine); err != nil {
			panic(fmt.Errorf("failed to register engine: %w", err))
		}
	}
	logger.Debug("All configured engines registered.", "count", len(model.Engines))

	m := metrics.New()
	return &App{
		outW:     outW,
		logger:   logger,
		model:    model,
		pantheon: pantheon.New(reg, pantheon.WithObserver(m)),
		metrics:  m,
	}
}

// Pantheon returns the application's pantheon. This is primarily for testing.
func (a *App) Pantheon() *pantheon.Pantheon {
	return a.pantheon
}
