package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
)

const DEFAULT_APP_ENV = "dev"

var validate = validator.New()

type Config struct {
	Port     int    `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	AppEnv   string `envconfig:"APP_ENV" default:"dev" validate:"oneof=dev test production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// SCORER_PLAIN_TEXT renders markdown to plain text before scoring
	ScorerPlainText bool `envconfig:"SCORER_PLAIN_TEXT" default:"false"`

	HealthcheckInterval time.Duration `envconfig:"HEALTHCHECK_INTERVAL" default:"15s" validate:"gt=0"`
	ShutdownTimeout     time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`

	// MAX_BODY_BYTES caps form and JSON request bodies
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576" validate:"gt=0"`

	// CORS_ALLOWED_ORIGINS is a comma separated list; empty disables CORS
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" validate:"dive,startswith=http://|startswith=https://"`
}

// AppEnv returns APP_ENV, falling back to dev.
func AppEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		return DEFAULT_APP_ENV
	}
	return env
}

// Load decodes the process environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode environment: %w", err)
	}

	cfg.CORSAllowedOrigins = lo.Compact(lo.Map(cfg.CORSAllowedOrigins, func(origin string, _ int) string {
		return strings.TrimSpace(origin)
	}))

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
