package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kyaoi/folio/internal/logging"
	"github.com/kyaoi/folio/internal/pref"
)

// Configuration validation errors, checkable with errors.Is.
var (
	ErrInvalidBackend    = errors.New("invalid preferences.backend")
	ErrInvalidBreakpoint = errors.New("invalid tui.nav_breakpoint: must be non-negative")
	ErrInvalidLogLevel   = errors.New("invalid logging.level")
)

// Validate returns the first problem found in the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(pref.Backends(), c.Preferences.Backend) {
		return fmt.Errorf("%w %q: must be one of %v", ErrInvalidBackend, c.Preferences.Backend, pref.Backends())
	}
	if c.TUI.NavBreakpoint < 0 {
		return ErrInvalidBreakpoint
	}
	if !logging.IsValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w %q: must be one of %v", ErrInvalidLogLevel, c.Logging.Level, logging.ValidLevels())
	}
	return nil
}
