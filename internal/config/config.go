// Package config provides configuration management for the trading journal.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	apperrors "tradebook/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Journal     JournalConfig `mapstructure:"journal"`
	Coach       CoachConfig   `mapstructure:"coach"`
	UI          UIConfig      `mapstructure:"ui"`
	Credentials Credentials   `mapstructure:"-"` // Loaded separately
}

// JournalConfig holds journal-related configuration.
type JournalConfig struct {
	User               string  `mapstructure:"user"`                 // row scope for the store
	Capital            float64 `mapstructure:"capital"`              // trading capital for position sizing
	DefaultRiskPercent float64 `mapstructure:"default_risk_percent"` // risk per trade, percent of capital
	DatabasePath       string  `mapstructure:"database_path"`
	WatchDatabase      bool    `mapstructure:"watch_database"` // reload on out-of-process writes
}

// CoachConfig holds AI coach configuration.
type CoachConfig struct {
	Model string `mapstructure:"model"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// Credentials holds API credentials.
type Credentials struct {
	OpenAI OpenAICredentials `mapstructure:"openai"`
}

// OpenAICredentials holds OpenAI API credentials.
type OpenAICredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/tradebook"
	}
	return filepath.Join(home, ".config", "tradebook")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg, configDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("journal.user", "default")
	v.SetDefault("journal.capital", 100000.0)
	v.SetDefault("journal.default_risk_percent", 1.0)
	v.SetDefault("journal.watch_database", false)
	v.SetDefault("coach.model", "gpt-4o-mini")
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("ui.time_format", "15:04:05")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		// No config file yet: defaults carry the day.
	}

	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Credentials.OpenAI.APIKey = v
	}
	if v := os.Getenv("TRADEBOOK_USER"); v != "" {
		cfg.Journal.User = v
	}
	if v := os.Getenv("TRADEBOOK_DB"); v != "" {
		cfg.Journal.DatabasePath = v
	}
}

func applyDefaults(cfg *Config, configDir string) {
	if cfg.Journal.DatabasePath == "" {
		cfg.Journal.DatabasePath = filepath.Join(configDir, "tradebook.db")
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Journal.Capital < 0 {
		return fmt.Errorf("%w: journal capital must be non-negative", apperrors.ErrConfigInvalid)
	}
	if c.Journal.DefaultRiskPercent < 0 || c.Journal.DefaultRiskPercent > 100 {
		return fmt.Errorf("%w: default_risk_percent must be between 0 and 100", apperrors.ErrConfigInvalid)
	}
	if c.Journal.DatabasePath == "" {
		return fmt.Errorf("%w: database_path must not be empty", apperrors.ErrConfigInvalid)
	}
	return nil
}
