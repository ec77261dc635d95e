package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/livinlefevreloca/cronwhen/lib/cron"
)

// Config represents the application configuration
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Output  OutputConfig  `toml:"output"`
	Logging LoggingConfig `toml:"logging"`
}

// SearchConfig holds occurrence search settings
type SearchConfig struct {
	// MaxYears bounds how far the occurrence search looks before failing
	MaxYears int `toml:"max_years"`
}

// OutputConfig holds settings for rendering computed occurrences
type OutputConfig struct {
	TimeFormat string `toml:"time_format"`
	Timezone   string `toml:"timezone"`
	Count      int    `toml:"count"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxYears: cron.DefaultMaxSearchYears,
		},
		Output: OutputConfig{
			TimeFormat: "2006-01-02 15:04:05",
			Timezone:   "Local",
			Count:      1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFromFile loads configuration from a TOML file
func LoadFromFile(path string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	// Parse TOML file
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadConfig loads configuration with the following precedence:
// 1. Default values
// 2. Config file (if specified)
// 3. Command-line flags (handled by caller)
func LoadConfig(configPath string) (*Config, error) {
	// If no config file specified, return defaults
	if configPath == "" {
		return DefaultConfig(), nil
	}

	return LoadFromFile(configPath)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Search.MaxYears <= 0 {
		return fmt.Errorf("search max_years must be positive")
	}

	if c.Output.TimeFormat == "" {
		return fmt.Errorf("output time_format must be specified")
	}
	if c.Output.Count <= 0 {
		return fmt.Errorf("output count must be positive")
	}
	if _, err := c.Output.Location(); err != nil {
		return fmt.Errorf("invalid output timezone: %w", err)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logging.Format)
	}

	return nil
}

// Location resolves the configured timezone name
func (o OutputConfig) Location() (*time.Location, error) {
	if o.Timezone == "" || o.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(o.Timezone)
}

// SlogLevel maps the configured level name to a slog level
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
