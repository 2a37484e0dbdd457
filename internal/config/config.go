// Package config provides Viper-based configuration management for oclctl
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. OCLCTL_API_BASE_URL.
const EnvPrefix = "OCLCTL"

// Config represents the complete oclctl configuration
type Config struct {
	API     APIConfig     `mapstructure:"api" json:"api"`
	Session SessionConfig `mapstructure:"session" json:"session"`
	Logging LoggingConfig `mapstructure:"logging" json:"logging"`
	Output  OutputConfig  `mapstructure:"output" json:"output"`

	// Source is the config file that was read, empty when running on defaults.
	Source string `mapstructure:"-" json:"source,omitempty"`
}

// APIConfig locates the remote API
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" json:"base_url"`
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// SessionConfig controls where the session token is kept
type SessionConfig struct {
	Dir           string        `mapstructure:"dir" json:"dir"`
	ExpiryWarning time.Duration `mapstructure:"expiry_warning" json:"expiry_warning"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors" json:"colors"`
}

// Load reads configuration from a .env file, the config file, and environment
// variables, in increasing order of precedence. A non-empty apiURL overrides
// everything else.
func Load(cfgFile, apiURL string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".oclctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/oclctl")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if apiURL != "" {
		v.Set("api.base_url", apiURL)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://127.0.0.1:5000")
	v.SetDefault("api.timeout", 30*time.Second)

	v.SetDefault("session.dir", defaultSessionDir())
	v.SetDefault("session.expiry_warning", 5*time.Minute)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("output.colors", true)
}

func defaultSessionDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "oclctl")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".oclctl")
	}
	return ".oclctl"
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api.base_url %q: %w", cfg.API.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q: must be an absolute http or https URL", cfg.API.BaseURL)
	}

	if cfg.API.Timeout < 0 {
		return fmt.Errorf("invalid api.timeout %s: must not be negative", cfg.API.Timeout)
	}
	if cfg.Session.ExpiryWarning < 0 {
		return fmt.Errorf("invalid session.expiry_warning %s: must not be negative", cfg.Session.ExpiryWarning)
	}
	if cfg.Session.Dir == "" {
		return errors.New("session.dir must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be text or json)", cfg.Logging.Format)
	}

	return nil
}
