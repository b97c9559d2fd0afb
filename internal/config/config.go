package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton so packages without an injected config can still read it.
var globalConfig *Config

// Config holds all environment backed configuration for astro-api.
type Config struct {
	// HTTP Server
	HTTPPort    int `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9091"`

	// Gemini upstream
	GeminiAPIKey  string `env:"GEMINI_API_KEY,notEmpty"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	DefaultModel  string `env:"GEMINI_DEFAULT_MODEL" envDefault:"gemini-2.0-flash"`

	// NASA NeoWs
	NASAAPIKey  string        `env:"NASA_API_KEY" envDefault:"DEMO_KEY"`
	NASABaseURL string        `env:"NASA_BASE_URL" envDefault:"https://api.nasa.gov/neo/rest/v1"`
	NASATimeout time.Duration `env:"NASA_REQUEST_TIMEOUT" envDefault:"10s"`

	// NEO feed refresh
	NeoCacheTTL        time.Duration `env:"NEO_CACHE_TTL" envDefault:"5m"`
	NeoRefreshSchedule string        `env:"NEO_REFRESH_SCHEDULE" envDefault:"*/10 * * * *"`
	NeoRefreshEnabled  bool          `env:"NEO_REFRESH_ENABLED" envDefault:"true"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"astro-api"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"cosmic-watch"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`

	// Internal
	StartedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.GeminiBaseURL); err != nil {
		return nil, fmt.Errorf("invalid GEMINI_BASE_URL: %w", err)
	}
	if _, err := url.ParseRequestURI(cfg.NASABaseURL); err != nil {
		return nil, fmt.Errorf("invalid NASA_BASE_URL: %w", err)
	}

	cfg.DefaultModel = strings.TrimSpace(cfg.DefaultModel)
	if cfg.DefaultModel == "" {
		return nil, errors.New("GEMINI_DEFAULT_MODEL must not be empty")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.StartedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// GetGlobal returns the global config instance.
func GetGlobal() *Config {
	return globalConfig
}

// Uptime reports how long the process has been running.
func (c *Config) Uptime() time.Duration {
	return time.Since(c.StartedAt)
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
