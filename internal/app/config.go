package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// PipelinePath is a pipeline file or a directory of .hcl files. Empty runs the built-in
	// pipeline.
	PipelinePath string

	GrassBin string
	Mapset   string
	DryRun   bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if (cfg.GrassBin == "") != (cfg.Mapset == "") {
		return nil, errors.New("grass binary and mapset must be configured together")
	}
	return &cfg, nil
}
