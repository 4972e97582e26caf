package dem

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	envPrefix          = "MEHFLT"
	defaultParallelism = 4
)

// Config holds Reader settings loaded from the environment.
type Config struct {
	CaseInsensitiveExt bool `envconfig:"CASE_INSENSITIVE_EXT" default:"false"`
	Parallelism        int  `envconfig:"PARALLELISM" default:"4"`
}

// LoadConfig loads the configuration from MEHFLT_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config from env: %w", err)
	}

	if cfg.Parallelism < 1 {
		return cfg, fmt.Errorf("parallelism must be at least 1, got %d", cfg.Parallelism)
	}

	return cfg, nil
}

// Options converts the config into Reader options.
func (cfg Config) Options() []Option {
	opts := []Option{WithParallelism(cfg.Parallelism)}
	if cfg.CaseInsensitiveExt {
		opts = append(opts, WithCaseInsensitiveExtensions())
	}
	return opts
}
