// Package config loads folio settings from the config file, environment
// and command-line flags through viper.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// AppName names the XDG directories and the environment prefix.
const AppName = "folio"

// Config represents the complete folio configuration
type Config struct {
	// Content is a content directory or portfolio file. Empty uses the
	// built-in portfolio.
	Content     string            `mapstructure:"content"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	TUI         TUIConfig         `mapstructure:"tui"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// PreferencesConfig selects where the theme preference is stored
type PreferencesConfig struct {
	// Backend is "file", "sqlite" or "memory" (default: "file")
	Backend string `mapstructure:"backend"`
	// Dir overrides the directory holding the preference file or database.
	// Empty means the XDG config dir for "file" and the XDG data dir for
	// "sqlite".
	Dir string `mapstructure:"dir"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// NavBreakpoint is the terminal width below which the navigation bar
	// collapses into a menu (default: 100)
	NavBreakpoint int `mapstructure:"nav_breakpoint"`
	// SmoothScroll animates navigation (default: true)
	SmoothScroll bool `mapstructure:"smooth_scroll"`
	// Mouse enables mouse wheel scrolling (default: true)
	Mouse bool `mapstructure:"mouse"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: false)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir overrides the log directory (default: XDG state dir)
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Content: "",
		Preferences: PreferencesConfig{
			Backend: "file",
		},
		TUI: TUIConfig{
			NavBreakpoint: 100,
			SmoothScroll:  true,
			Mouse:         true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("content", defaults.Content)

	v.SetDefault("preferences.backend", defaults.Preferences.Backend)
	v.SetDefault("preferences.dir", defaults.Preferences.Dir)

	v.SetDefault("tui.nav_breakpoint", defaults.TUI.NavBreakpoint)
	v.SetDefault("tui.smooth_scroll", defaults.TUI.SmoothScroll)
	v.SetDefault("tui.mouse", defaults.TUI.Mouse)

	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigDir returns the XDG config directory for folio.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DataDir returns the XDG data directory for folio.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// StateDir returns the XDG state directory for folio.
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// PreferencesDir returns the directory the preference backend stores its
// data in.
func (c *Config) PreferencesDir() string {
	if c.Preferences.Dir != "" {
		return c.Preferences.Dir
	}
	if c.Preferences.Backend == "sqlite" {
		return DataDir()
	}
	return ConfigDir()
}

// LogDir returns the directory debug logs are written to.
func (c *Config) LogDir() string {
	if c.Logging.Dir != "" {
		return c.Logging.Dir
	}
	return StateDir()
}
