// Package config defines the configuration for the paystate service.
// Configuration is loaded once at process initialization and is immutable
// thereafter, following 12-Factor principles: values come from the OS
// environment, optionally seeded from a .env file in local development.
// Any missing required value or invalid format fails startup immediately.
package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the top-level configuration struct. It is populated once during
// process initialization and never modified.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"oneof=local dev staging prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Server  ServerConfig
	Catalog CatalogConfig
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

// CatalogConfig selects the catalog provider. Exactly one of Path and URL is
// normally set; when both are empty the service runs without a catalog and
// the resolver degrades to its conservative defaults.
type CatalogConfig struct {
	Path string `envconfig:"CATALOG_PATH"`
	URL  string `envconfig:"CATALOG_URL" validate:"omitempty,url"`

	// UserAgent identifies this service to the remote catalog endpoint.
	UserAgent string `envconfig:"CATALOG_USER_AGENT" default:"paystate"`
}

// Load populates a Config from the environment. A .env file, when present,
// seeds variables that are not already set; its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
