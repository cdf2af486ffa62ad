// Package config loads process settings from the environment.
//
// Only diagnostics are configurable. The number range and the attempt
// limit are fixed by the game package.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings read at startup.
type Config struct {
	LogLevel  string `env:"GUESS_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"GUESS_LOG_FORMAT" envDefault:"auto"`
}

// Load reads an optional .env file and then parses the environment.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.LogFormat {
	case "auto", "console", "json":
	default:
		return Config{}, fmt.Errorf("parse env: unknown log format %q", cfg.LogFormat)
	}
	return cfg, nil
}
