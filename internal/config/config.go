// Package config loads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings. Command-line flags override these.
type Config struct {
	DBPath    string `env:"TRGOVINA_DB" envDefault:"trgovina.sqlite3"`
	Addr      string `env:"TRGOVINA_ADDR" envDefault:":8080"`
	AdminUser string `env:"TRGOVINA_ADMIN_USER" envDefault:"Admin"`
	LogPath   string `env:"TRGOVINA_LOG"`
	Persist   bool   `env:"TRGOVINA_PERSIST" envDefault:"false"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
