package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings shared by the CLI and the server
type Config struct {
	LogLevel  string `env:"STONKS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"STONKS_LOG_FORMAT" envDefault:"text"`
	DBPath    string `env:"STONKS_DB_PATH" envDefault:"stonks.db"`
	Addr      string `env:"STONKS_ADDR" envDefault:":8080"`

	// Season keys stored overrides so a new season starts clean
	Season string `env:"STONKS_SEASON" envDefault:"dawn"`
}

// Load reads a .env file if present, then the environment
func Load() (*Config, error) {
	// Missing .env is fine, real env vars may be set instead
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid STONKS_LOG_FORMAT %q: want text or json", c.LogFormat)
	}
	if strings.TrimSpace(c.Season) == "" {
		return fmt.Errorf("STONKS_SEASON must not be empty")
	}
	return nil
}
