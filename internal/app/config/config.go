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
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	HTTP     HTTP       `mapstructure:",squash"`
	Scraper  Scraper    `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Mock     Mock       `mapstructure:",squash"`
}

type HTTP struct {
	Port               int           `mapstructure:"HTTP_PORT" validate:"min=1,max=65535"`
	Timeout            time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"gte=0"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// Scraper holds the external pricing provider configuration.
// An empty SearchAPIURL keeps the service in mock-only mode.
type Scraper struct {
	SearchAPIURL string        `mapstructure:"SCRAPER_API_URL" validate:"omitempty,url"`
	Timeout      time.Duration `mapstructure:"SCRAPER_API_TIMEOUT" validate:"gte=0"`
	RateLimitRPS int           `mapstructure:"SCRAPER_API_RATE_LIMIT" validate:"gte=0"`
}

// Enabled reports whether an external provider is configured.
func (s Scraper) Enabled() bool {
	return s.SearchAPIURL != ""
}

type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB" validate:"gte=0"`
}

type Mock struct {
	Latency time.Duration `mapstructure:"MOCK_LATENCY" validate:"gte=0"`
}
