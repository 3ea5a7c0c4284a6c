package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// PantheonPath points at a .hcl file or a directory of them.
	PantheonPath string

	LogFormat string
	LogLevel  string
	// OpsPort serves /health and /metrics. 0 disables the server.
	OpsPort int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PantheonPath == "" {
		return nil, errors.New("PantheonPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
