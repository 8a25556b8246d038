package app

import (
	"errors"
	"fmt"

	"github.com/kyaoi/folio/internal/config"
	"github.com/kyaoi/folio/internal/logging"
	"github.com/kyaoi/folio/internal/pref"
)

// Env holds the resources shared by every command: the logger and the
// preference store.
type Env struct {
	Log   *logging.Logger
	Store pref.Store

	closeStore func() error
	closed     bool
}

// OpenEnv creates the logger and opens the configured preference store.
func OpenEnv(cfg *config.Config) (*Env, error) {
	log := logging.NopLogger()
	if cfg.Logging.Enabled {
		l, err := logging.NewLogger(cfg.LogDir(), cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		log = l
	}

	store, closeStore, err := pref.Open(cfg.Preferences.Backend, cfg.PreferencesDir())
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	log.Debug("environment ready", "backend", cfg.Preferences.Backend, "dir", cfg.PreferencesDir())

	return &Env{Log: log, Store: store, closeStore: closeStore}, nil
}

// Close releases the store and the logger. Calling it again does nothing.
func (e *Env) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	var errs []error
	if e.closeStore != nil {
		if err := e.closeStore(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close preferences: %w", err))
		}
	}
	if err := e.Log.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
