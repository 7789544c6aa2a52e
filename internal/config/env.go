package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Env is the configuration recognised in the process environment.
type Env struct {
	// PipelinePath points at a pipeline file or directory. Empty selects the
	// built-in pipeline.
	PipelinePath string `env:"GRASSCHAIN_PIPELINE"`
	// GrassBin and Mapset, when both set, run every module through
	// "<GrassBin> <Mapset> --exec".
	GrassBin  string `env:"GRASSCHAIN_GRASS_BIN"`
	Mapset    string `env:"GRASSCHAIN_MAPSET"`
	LogLevel  string `env:"GRASSCHAIN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"GRASSCHAIN_LOG_FORMAT" envDefault:"text"`
}

// ParseEnv loads configuration from the process environment.
func ParseEnv() (Env, error) {
	return ParseEnvFrom(env.ToMap(os.Environ()))
}

// ParseEnvFrom loads configuration from the given mapping instead of the
// process environment.
func ParseEnvFrom(environment map[string]string) (Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
