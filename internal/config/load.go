package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default configuration values applied when the corresponding
// environment variables are unset.
const (
	DefaultServerPort               = 8080
	DefaultLogLevel                 = "info"
	DefaultAlgorithm                = "HS256"
	DefaultAccessTokenExpireMinutes = 30
)

// Load reads configuration from environment variables, applies
// defaults, and validates the result. The variable names follow the
// deployment documentation: DATABASE_URL, SECRET_KEY, ALGORITHM and
// ACCESS_TOKEN_EXPIRE_MINUTES, plus SERVER_PORT and LOG_LEVEL for the
// HTTP server itself.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("auth.algorithm", DefaultAlgorithm)
	v.SetDefault("auth.access_token_expire_minutes", DefaultAccessTokenExpireMinutes)

	// The environment variable names are fixed by the deployment docs,
	// so each config key is bound explicitly instead of using a prefix.
	bindings := map[string]string{
		"server.port":                      "SERVER_PORT",
		"server.log_level":                 "LOG_LEVEL",
		"database.url":                     "DATABASE_URL",
		"auth.secret_key":                  "SECRET_KEY",
		"auth.algorithm":                   "ALGORITHM",
		"auth.access_token_expire_minutes": "ACCESS_TOKEN_EXPIRE_MINUTES",
	}
	for key, envVar := range bindings {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
