package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevelName    string        `env:"LOG_LEVEL" envDefault:"info"`
	Timezone        string        `env:"PUZZLE_TIMEZONE" envDefault:"Australia/Sydney"`
	SeedSalt        string        `env:"PUZZLE_SEED_SALT"`
	CacheDays       int           `env:"PUZZLE_CACHE_DAYS" envDefault:"7"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	LogLevel slog.Level `env:"-"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	level, err := parseLogLevel(c.LogLevelName)
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.CacheDays < 1 {
		return Config{}, fmt.Errorf("invalid PUZZLE_CACHE_DAYS %d: must be at least 1", c.CacheDays)
	}
	if c.Timezone == "" {
		return Config{}, fmt.Errorf("PUZZLE_TIMEZONE must not be empty")
	}

	return c, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
