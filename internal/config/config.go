// Package config loads and validates the application configuration from a
// YAML file and SEIRSIM_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Alert      AlertConfig      `mapstructure:"alert"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// SimulationConfig holds guard rails around scenario input. The engine
// itself enforces no upper duration bound; the CLI warns past this value
// instead of rejecting, since runtime is linear in the duration.
type SimulationConfig struct {
	MaxRecommendedDays int `mapstructure:"max_recommended_days"`
}

// StorageConfig holds run-history persistence configuration
type StorageConfig struct {
	DBPath         string `mapstructure:"db_path"`
	TraceCacheSize int    `mapstructure:"trace_cache_size"`
}

// AlertConfig holds Telegram peak-alert configuration. PeakThreshold is the
// infectious-peak fraction of the total population above which a completed
// run triggers an alert.
type AlertConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	BotToken       string        `mapstructure:"bot_token"`
	ChatID         string        `mapstructure:"chat_id"`
	PeakThreshold  float64       `mapstructure:"peak_threshold"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RetryDelayBase time.Duration `mapstructure:"retry_delay_base"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. A missing
// config file is not an error; defaults and environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("SEIRSIM")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Simulation defaults
	v.SetDefault("simulation.max_recommended_days", 3650)

	// Storage defaults
	v.SetDefault("storage.db_path", "./data/seirsim.db")
	v.SetDefault("storage.trace_cache_size", 16)

	// Alert defaults
	v.SetDefault("alert.enabled", false)
	v.SetDefault("alert.peak_threshold", 0.05)
	v.SetDefault("alert.max_retries", 3)
	v.SetDefault("alert.retry_delay_base", "1s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Simulation.MaxRecommendedDays < 1 {
		return fmt.Errorf("simulation.max_recommended_days must be at least 1")
	}

	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required")
	}
	if c.Storage.TraceCacheSize < 1 {
		return fmt.Errorf("storage.trace_cache_size must be at least 1")
	}

	if c.Alert.Enabled {
		if c.Alert.BotToken == "" {
			return fmt.Errorf("alert.bot_token is required when alerts are enabled")
		}
		if c.Alert.ChatID == "" {
			return fmt.Errorf("alert.chat_id is required when alerts are enabled")
		}
	}
	if c.Alert.PeakThreshold < 0.0 || c.Alert.PeakThreshold > 1.0 {
		return fmt.Errorf("alert.peak_threshold must be between 0.0 and 1.0")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
