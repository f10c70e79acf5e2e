package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// GridPath is a single .hcl grid file or a directory of them.
	GridPath string

	// ListTypes prints every registered type name instead of running.
	ListTypes bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" && !cfg.ListTypes {
		return nil, errors.New("GridPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
