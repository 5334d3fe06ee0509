package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Feed     Feed       `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

// Feed configures the upstream XML inventory feed. ListLimit caps how many
// index entries the listing endpoint enriches per request; every enrichment
// costs one extra upstream fetch.
type Feed struct {
	BaseURL      string        `mapstructure:"FEED_BASE_URL"`
	Timeout      time.Duration `mapstructure:"FEED_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"FEED_RATE_LIMIT"`
	ListLimit    int           `mapstructure:"FEED_LIST_LIMIT"`
}
