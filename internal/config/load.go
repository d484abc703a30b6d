package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied when neither environment nor config file provide one.
const (
	defaultPort          = 8080
	defaultLogLevel      = "info"
	defaultBackend       = "memory"
	defaultDecodePolicy  = "drop"
	defaultFlatDailyRate = 100
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// ESPACIOS_ prefix with underscores for nesting (e.g. ESPACIOS_SERVER_PORT)
// and take precedence over file values.
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("storage.backend", defaultBackend)
	v.SetDefault("storage.decode_policy", defaultDecodePolicy)
	v.SetDefault("pricing.flat_daily_rate", defaultFlatDailyRate)

	// Backend-specific keys default to empty so AutomaticEnv can see them
	// during Unmarshal; required_if validation catches genuinely missing ones.
	v.SetDefault("storage.file_dir", "")
	v.SetDefault("storage.redis_addr", "")
	v.SetDefault("storage.redis_password", "")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("storage.postgres_url", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ESPACIOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine: defaults plus environment cover the
		// demo setup. Anything else (unreadable file, bad YAML) is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
