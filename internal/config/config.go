package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration, parsed from environment
// variables. OTel exporter endpoints are configured through the standard
// OTEL_* variables consumed by the SDK directly.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// BaseURL is the externally visible base URL, used to build the
	// endpoint URLs in the tool discovery listing.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

// Load parses the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
