package ui

import (
	"github.com/kyaoi/folio/internal/content"
	"github.com/kyaoi/folio/internal/logging"
	"github.com/kyaoi/folio/internal/page"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Page      *page.Page
	Portfolio *content.Portfolio
	// Loader reloads the portfolio when its files change. Nil disables
	// hot reload.
	Loader     *content.Loader
	TechFilter string
	// Section is scrolled to once the first layout exists.
	Section       page.ID
	NavBreakpoint int
	SmoothScroll  bool
	Mouse         bool
	Logger        *logging.Logger
}
