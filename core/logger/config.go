package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config provides environment-based logger configuration.
type Config struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Level  string `env:"LOG_LEVEL" envDefault:""`
	Format string `env:"LOG_FORMAT" envDefault:""`
}

// NewFromConfig creates a logger for service from cfg.
// Env picks the preset; Level and Format override it when set.
func NewFromConfig(cfg Config, service string, opts ...Option) (*slog.Logger, error) {
	var base []Option
	switch strings.ToLower(cfg.Env) {
	case "production", "prod":
		base = append(base, WithProduction(service))
	case "staging", "stage":
		base = append(base, WithStaging(service))
	default:
		base = append(base, WithDevelopment(service))
	}

	if cfg.Level != "" {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		base = append(base, WithLevel(level))
	}

	switch strings.ToLower(cfg.Format) {
	case "":
	case "json":
		base = append(base, WithJSONFormatter())
	case "text":
		base = append(base, WithTextFormatter())
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	return New(append(base, opts...)...), nil
}

// ParseLevel parses a level name such as "debug", "INFO" or "warn+2".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
