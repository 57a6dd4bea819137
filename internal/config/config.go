// Package config handles tool configuration using Viper. Environment
// and XDG lookups live here so the core packages stay pure functions of
// their inputs.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/lcarr/xprimary/internal/swayconf"
)

// Config represents the application configuration.
type Config struct {
	Sway          SwayConfig          `mapstructure:"sway"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

// SwayConfig points at the compositor config carrying the preference
// block.
type SwayConfig struct {
	ConfigPath  string `mapstructure:"config_path"`
	StartMarker string `mapstructure:"start_marker"`
	EndMarker   string `mapstructure:"end_marker"`
}

// NotificationsConfig controls the desktop notification sink.
type NotificationsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

// DefaultSwayConfigPath is where sway keeps its config unless the user
// says otherwise.
func DefaultSwayConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "sway", "config")
}

var cfg *Config

// Init loads the tool configuration. A missing config file is fine;
// defaults apply.
func Init() error {
	viper.SetConfigName("xprimary")
	viper.SetConfigType("toml")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "xprimary"))
	viper.AddConfigPath(".")

	viper.SetDefault("sway.config_path", DefaultSwayConfigPath())
	viper.SetDefault("sway.start_marker", swayconf.DefaultStartMarker)
	viper.SetDefault("sway.end_marker", swayconf.DefaultEndMarker)
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("logging.log_level", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration, or defaults when Init has not
// run.
func Get() *Config {
	if cfg == nil {
		return &Config{
			Sway: SwayConfig{
				ConfigPath:  DefaultSwayConfigPath(),
				StartMarker: swayconf.DefaultStartMarker,
				EndMarker:   swayconf.DefaultEndMarker,
			},
			Notifications: NotificationsConfig{Enabled: true},
		}
	}
	return cfg
}

// Set replaces the current configuration (for testing).
func Set(c *Config) {
	cfg = c
}
