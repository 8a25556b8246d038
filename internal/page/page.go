package page

import (
	"fmt"

	"github.com/kyaoi/folio/internal/logging"
	"github.com/kyaoi/folio/internal/pref"
)

// Page is the page-level state. It is not safe for concurrent use; all
// calls are expected to come from the UI update loop.
type Page struct {
	store pref.Store
	log   *logging.Logger

	theme    Theme
	active   ID
	menuOpen bool

	watcher  Watcher
	locator  Locator
	scroller Scroller
}

// Option configures a Page.
type Option func(*Page)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logging.Logger) Option {
	return func(p *Page) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a Page and reads the stored theme. A missing, unreadable or
// unrecognized preference yields DefaultTheme.
func New(store pref.Store, opts ...Option) *Page {
	p := &Page{
		store:  store,
		log:    logging.NopLogger(),
		active: Home,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.theme = p.loadTheme()
	return p
}

func (p *Page) loadTheme() Theme {
	if p.store == nil {
		return DefaultTheme
	}
	raw, ok, err := p.store.Get(ThemeKey)
	if err != nil {
		p.log.Warn("failed to read theme preference", "error", err)
		return DefaultTheme
	}
	if !ok {
		return DefaultTheme
	}
	theme, err := ParseTheme(raw)
	if err != nil {
		p.log.Warn("ignoring stored theme", "value", raw)
		return DefaultTheme
	}
	return theme
}

// Theme returns the current theme.
func (p *Page) Theme() Theme {
	return p.theme
}

// ToggleTheme flips the theme, persists it and returns the new value. When
// the write fails the current theme is kept and the error returned.
func (p *Page) ToggleTheme() (Theme, error) {
	next := p.theme.Toggled()
	if p.store != nil {
		if err := p.store.Set(ThemeKey, string(next)); err != nil {
			return p.theme, fmt.Errorf("failed to save theme: %w", err)
		}
	}
	p.theme = next
	p.log.Debug("theme toggled", "theme", string(next))
	return next, nil
}

// SetTheme persists theme and makes it current. The write happens even when
// theme is already current so an unrecognized stored value is replaced.
func (p *Page) SetTheme(theme Theme) error {
	if p.store != nil {
		if err := p.store.Set(ThemeKey, string(theme)); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
	}
	p.theme = theme
	p.log.Debug("theme set", "theme", string(theme))
	return nil
}

// Active returns the active section.
func (p *Page) Active() ID {
	return p.active
}

// MenuOpen reports whether the navigation menu is open.
func (p *Page) MenuOpen() bool {
	return p.menuOpen
}

// ToggleMenu opens a closed menu and closes an open one.
func (p *Page) ToggleMenu() {
	p.menuOpen = !p.menuOpen
}

// CloseMenu closes the navigation menu.
func (p *Page) CloseMenu() {
	p.menuOpen = false
}

// Mounted reports whether a watcher is attached.
func (p *Page) Mounted() bool {
	return p.watcher != nil
}

// Mount attaches the page to a rendered document. It creates a watcher
// with newWatcher and observes every menu section the locator can find.
// A mounted page is unmounted first.
func (p *Page) Mount(loc Locator, scr Scroller, newWatcher WatcherFunc) {
	p.Unmount()
	p.locator = loc
	p.scroller = scr
	if newWatcher == nil {
		return
	}

	w := newWatcher(p.handle)
	if w == nil {
		return
	}
	p.watcher = w
	observed := 0
	for _, item := range Menu() {
		if loc == nil {
			break
		}
		if _, ok := loc.Locate(item.ID); ok {
			w.Observe(item.ID, VisibilityThreshold)
			observed++
		}
	}
	p.log.Debug("page mounted", "observed", observed)
}

// Unmount disconnects the watcher. Calling it again, or on a page that was
// never mounted, does nothing.
func (p *Page) Unmount() {
	if p.watcher == nil {
		return
	}
	w := p.watcher
	p.watcher = nil
	w.Disconnect()
	p.log.Debug("page unmounted")
}

func (p *Page) handle(entries []Entry) {
	for _, e := range entries {
		if !e.Intersecting {
			continue
		}
		if e.ID != p.active {
			p.log.Debug("active section changed", "from", string(p.active), "to", string(e.ID))
		}
		p.active = e.ID
	}
}

// Navigate scrolls section id to the top of the viewport and closes the
// menu. Unknown sections only close the menu.
func (p *Page) Navigate(id ID) {
	if p.locator != nil && p.scroller != nil {
		if line, ok := p.locator.Locate(id); ok {
			p.scroller.ScrollTo(line)
		}
	}
	p.menuOpen = false
}

// Relative returns the section delta steps away from the active one in
// menu order, skipping sections the document does not contain. It stops
// at the first and last entries.
func (p *Page) Relative(delta int) ID {
	menu := Menu()
	idx := max(IndexOf(p.active), 0)
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	for i := idx + step; i >= 0 && i < len(menu) && delta > 0; i += step {
		if p.present(menu[i].ID) {
			idx = i
			delta--
		}
	}
	return menu[idx].ID
}

func (p *Page) present(id ID) bool {
	if p.locator == nil {
		return false
	}
	_, ok := p.locator.Locate(id)
	return ok
}
