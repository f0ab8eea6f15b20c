// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Log output formats accepted by WIDGETPANEL_LOG_FORMAT.
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr    string `env:"WIDGETPANEL_LISTEN_ADDR" envDefault:"127.0.0.1:8080"`
	DBPath        string `env:"WIDGETPANEL_DB_PATH" envDefault:"widgetpanel.db"`
	Persistence   bool   `env:"WIDGETPANEL_PERSISTENCE" envDefault:"true"`
	LogLevel      string `env:"WIDGETPANEL_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"WIDGETPANEL_LOG_FORMAT" envDefault:"auto"`
	LogFile       string `env:"WIDGETPANEL_LOG_FILE"`
	SecureCookies bool   `env:"WIDGETPANEL_SECURE_COOKIES" envDefault:"false"`
	OTelEndpoint  string `env:"WIDGETPANEL_OTEL_ENDPOINT"`
	TUIScope      string `env:"WIDGETPANEL_TUI_SCOPE" envDefault:"terminal"`
}

// Load reads configuration from environment variables and returns a validated
// Config. Every variable is optional. Setting WIDGETPANEL_PERSISTENCE=false
// runs without a database: colors then live only for one page view.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("WIDGETPANEL_LOG_LEVEL: %w", err)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch cfg.LogFormat {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return nil, fmt.Errorf("WIDGETPANEL_LOG_FORMAT has invalid value %q: want auto, text or json", cfg.LogFormat)
	}

	if cfg.Persistence && strings.TrimSpace(cfg.DBPath) == "" {
		return nil, fmt.Errorf("WIDGETPANEL_DB_PATH is required when persistence is enabled")
	}

	if strings.TrimSpace(cfg.TUIScope) == "" {
		return nil, fmt.Errorf("WIDGETPANEL_TUI_SCOPE must not be empty")
	}

	return &cfg, nil
}

// SlogLevel returns the configured log level. Load has already validated it.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

// TracingEnabled reports whether spans should be exported.
func (c *Config) TracingEnabled() bool {
	return c.OTelEndpoint != ""
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
