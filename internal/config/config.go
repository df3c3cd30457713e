package config

import (
	"errors"

	"github.com/caarlos0/env/v11"

	"crowdfund/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested sections are parsed with their envPrefix. Use Load to construct a
// Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	Psql configs.Postgres `envPrefix:"PSQL_"`

	Storage configs.Storage `envPrefix:"STORAGE_"`

	Clock configs.Clock `envPrefix:"CLOCK_"`

	Telemetry configs.Telemetry `envPrefix:"TELEMETRY_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when no variable is provided. Values
// outside a section's accepted set are rejected.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := errors.Join(cfg.Storage.Validate(), cfg.Clock.Validate()); err != nil {
		return cfg, err
	}
	return cfg, nil
}
