package config

import (
	"fmt"
	"os"
	"status-timeline/internal/domain"
	"status-timeline/internal/timeline"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Rendering
	WindowDays      int    `yaml:"window_days"`
	LookbackDays    int    `yaml:"lookback_days"`
	BundleThreshold int    `yaml:"bundle_threshold"`
	CardType        string `yaml:"card_type"`
	BarType         string `yaml:"bar_type"`
	Concurrency     int    `yaml:"concurrency"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Output
	Output      string `yaml:"output"`
	MetricsFile string `yaml:"metrics_file"`
}

// Load reads configuration from an optional YAML file, then from the
// environment (and a .env file if present). Environment variables win.
// The result is not validated; callers apply their own overrides first and
// then call Validate.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.WindowDays = envInt("TIMELINE_WINDOW_DAYS", cfg.WindowDays)
	cfg.LookbackDays = envInt("TIMELINE_LOOKBACK_DAYS", cfg.LookbackDays)
	cfg.BundleThreshold = envInt("TIMELINE_BUNDLE_THRESHOLD", cfg.BundleThreshold)
	cfg.Concurrency = envInt("TIMELINE_CONCURRENCY", cfg.Concurrency)
	cfg.CardType = getenv("TIMELINE_CARD_TYPE", cfg.CardType)
	cfg.BarType = getenv("TIMELINE_BAR_TYPE", cfg.BarType)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("LOG_FORMAT", cfg.LogFormat)
	cfg.Output = getenv("TIMELINE_OUTPUT", cfg.Output)
	cfg.MetricsFile = getenv("TIMELINE_METRICS_FILE", cfg.MetricsFile)
}

func applyDefaults(cfg *Config) {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = timeline.DefaultWindowDays
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = timeline.DefaultLookbackDays
	}
	if cfg.BundleThreshold <= 0 {
		cfg.BundleThreshold = timeline.DefaultBundleThreshold
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if strings.TrimSpace(cfg.CardType) == "" {
		cfg.CardType = string(domain.CardRequests)
	}
	if strings.TrimSpace(cfg.BarType) == "" {
		cfg.BarType = string(domain.BarAbsolute)
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = "info"
	}
	if strings.TrimSpace(cfg.LogFormat) == "" {
		cfg.LogFormat = "json"
	}
	if strings.TrimSpace(cfg.Output) == "" {
		cfg.Output = "json"
	}
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	if _, err := c.RenderConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("config: invalid log_format %q (use json or console)", c.LogFormat)
	}

	switch strings.ToLower(c.Output) {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("config: invalid output %q (use json, yaml or text)", c.Output)
	}

	return nil
}

// RenderConfig returns the validated rendering modes
func (c *Config) RenderConfig() (domain.RenderConfig, error) {
	card, err := domain.NewCardType(c.CardType)
	if err != nil {
		return domain.RenderConfig{}, err
	}
	bar, err := domain.NewBarType(c.BarType)
	if err != nil {
		return domain.RenderConfig{}, err
	}
	return domain.RenderConfig{CardType: card, BarType: bar}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
