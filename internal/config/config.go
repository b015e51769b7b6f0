// Package config reads the parking backend configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime parameters of the parking backend. VisitorRate is
// the flat charge, in minor currency units, applied to vehicles without an
// active membership.
type Config struct {
	Port               string   `env:"PORT" envDefault:"8080"`
	VisitorRate        int64    `env:"VISITOR_RATE" envDefault:"5000"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Parse reads the configuration from environment variables.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.VisitorRate < 0 {
		return nil, fmt.Errorf("visitor rate cannot be negative, got %d", cfg.VisitorRate)
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	return cfg, nil
}
