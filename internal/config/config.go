package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"momentum/internal/storage"
)

// Config is loaded from the environment. DBPath falls back to the default
// location under the user's home directory.
type Config struct {
	DBPath   string `env:"MOMENTUM_DB_PATH"`
	LogLevel string `env:"MOMENTUM_LOG_LEVEL" envDefault:"warn"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = path
	}
	return cfg, nil
}
