package config

import (
	"os"
	"strconv"

	"gogrubbs/domain/grubbs"
	"gogrubbs/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Defaults grubbs.DetectionParams
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database connection settings. An empty URL disables
// report persistence.
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Defaults: grubbs.DefaultParams(),
	}

	if raw := os.Getenv("GRUBBS_ALPHA"); raw != "" {
		alpha, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.ConfigInvalid("GRUBBS_ALPHA must be a number")
		}
		cfg.Defaults.Alpha = alpha
	}

	if raw := os.Getenv("GRUBBS_VARIANT"); raw != "" {
		variant, err := grubbs.ParseVariant(raw)
		if err != nil {
			return nil, errors.Wrap(err, "GRUBBS_VARIANT")
		}
		cfg.Defaults.Variant = variant
	}

	if raw := os.Getenv("GRUBBS_TAILS"); raw != "" {
		tails, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.ConfigInvalid("GRUBBS_TAILS must be an integer")
		}
		cfg.Defaults.Tails = grubbs.Tails(tails)
	}

	if err := cfg.Defaults.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid detection defaults")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
