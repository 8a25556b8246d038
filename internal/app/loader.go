package app

import (
	"errors"
	"fmt"

	"github.com/kyaoi/folio/internal/config"
	"github.com/kyaoi/folio/internal/content"
	"github.com/kyaoi/folio/internal/page"
	"github.com/kyaoi/folio/internal/ui"
)

// ErrUnknownSection is returned for a deep link to a section the page does
// not have.
var ErrUnknownSection = errors.New("unknown section")

// Options selects what the viewer opens with.
type Options struct {
	// Section is scrolled to on start.
	Section string
	// Tech limits the projects to those using the technology.
	Tech string
}

// OpenContent returns the loader for path. An empty path selects the
// built-in portfolio.
func OpenContent(path string) (*content.Loader, error) {
	if path == "" {
		return content.Embedded(), nil
	}
	loader, err := content.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content: %w", err)
	}
	return loader, nil
}

// ParseSection validates a deep link target. An empty value is allowed.
func ParseSection(s string) (page.ID, error) {
	if s == "" {
		return "", nil
	}
	id := page.ID(s)
	if page.IndexOf(id) < 0 {
		return "", fmt.Errorf("%w %q", ErrUnknownSection, s)
	}
	return id, nil
}

// LoadInitialState loads the content and prepares the UI state.
func LoadInitialState(cfg *config.Config, env *Env, opts Options) (ui.State, error) {
	section, err := ParseSection(opts.Section)
	if err != nil {
		return ui.State{}, err
	}

	loader, err := OpenContent(cfg.Content)
	if err != nil {
		return ui.State{}, err
	}
	portfolio, err := loader.Load()
	if err != nil {
		return ui.State{}, err
	}
	if opts.Tech != "" {
		portfolio, err = FilterProjects(portfolio, opts.Tech)
		if err != nil {
			return ui.State{}, err
		}
	}
	env.Log.Info("content loaded",
		"source", loader.Describe(),
		"projects", len(portfolio.Projects),
	)

	return ui.State{
		Page:          page.New(env.Store, page.WithLogger(env.Log.WithComponent("page"))),
		Portfolio:     portfolio,
		Loader:        loader,
		TechFilter:    opts.Tech,
		Section:       section,
		NavBreakpoint: cfg.TUI.NavBreakpoint,
		SmoothScroll:  cfg.TUI.SmoothScroll,
		Mouse:         cfg.TUI.Mouse,
		Logger:        env.Log,
	}, nil
}
