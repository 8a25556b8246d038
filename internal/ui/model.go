package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/folio/internal/content"
	"github.com/kyaoi/folio/internal/logging"
	"github.com/kyaoi/folio/internal/page"
	"github.com/kyaoi/folio/internal/render"
)

const (
	headerHeight    = 1
	footerHeight    = 1
	minContentWidth = 20
)

// Model implements the Bubble Tea program for the portfolio page.
type Model struct {
	contentVP  viewport.Model
	page       *page.Page
	renderer   *render.Renderer
	layout     render.Layout
	watcher    *page.ViewportWatcher
	portfolio  *content.Portfolio
	loader     *content.Loader
	source     string
	techFilter string
	log        *logging.Logger

	breakpoint     int
	smooth         bool
	instant        bool
	anim           scrollAnimation
	pendingSection page.ID
	menuCursor     int

	showHelp   bool
	pendingKey string
	ready      bool
	width      int
	height     int
	err        error

	searchInput   textinput.Model
	searchActive  bool
	searchQuery   string
	searchMatches []int
	searchIndex   int

	fsw       *fsnotify.Watcher
	watchChan chan tea.Msg
	watchDone chan struct{}
}

// NewModel constructs the page model with the provided initial state.
func NewModel(state State) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.Style = lipgloss.NewStyle().Padding(0, 1)
	contentVP.MouseWheelEnabled = state.Mouse

	log := state.Logger
	if log == nil {
		log = logging.NopLogger()
	}
	p := state.Page
	if p == nil {
		p = page.New(nil, page.WithLogger(log))
	}
	portfolio := state.Portfolio
	if portfolio == nil {
		portfolio = &content.Portfolio{}
	}

	m := &Model{
		contentVP:      contentVP,
		page:           p,
		portfolio:      portfolio,
		loader:         state.Loader,
		techFilter:     state.TechFilter,
		log:            log.WithComponent("ui"),
		breakpoint:     state.NavBreakpoint,
		smooth:         state.SmoothScroll,
		anim:           newScrollAnimation(),
		pendingSection: state.Section,
		searchIndex:    -1,
	}
	if state.Loader != nil {
		m.source = state.Loader.Describe()
	}

	searchInput := textinput.New()
	searchInput.Prompt = "/"
	searchInput.CharLimit = 256
	searchInput.Placeholder = "search"
	searchInput.CursorEnd()
	searchInput.Blur()
	m.searchInput = searchInput

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.startWatching()
}

// View implements tea.Model.
func (m *Model) View() string {
	p := paletteFor(m.page.Theme())

	if m.showHelp {
		help := m.helpView(p)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, help)
		}
		return help
	}
	if !m.ready {
		return ""
	}

	body := m.contentVP.View()
	if m.page.MenuOpen() {
		body = lipgloss.Place(m.width, m.contentVP.Height, lipgloss.Left, lipgloss.Top, m.menuView(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(p), body, m.statusView(p))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileEventMsg:
		return m, m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()
	case scrollFrameMsg:
		return m, m.handleFrame(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			switch msg.Type {
			case tea.KeyEnter:
				query := strings.TrimSpace(m.searchInput.Value())
				m.exitSearchMode()
				if query == "" {
					m.clearSearch()
					return m, nil
				}
				m.performSearch(query)
				return m, nil
			case tea.KeyEsc, tea.KeyCtrlC:
				m.exitSearchMode()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		key := msg.String()
		if key != "g" {
			m.pendingKey = ""
		}

		if m.showHelp {
			switch key {
			case "q", "?", "esc":
				m.showHelp = false
			}
			return m, nil
		}

		if m.page.MenuOpen() {
			if handled, cmd := m.handleMenuKey(key); handled {
				return m, cmd
			}
		}

		switch key {
		case "q", "ctrl+c":
			m.shutdown()
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "t":
			m.toggleTheme()
			return m, nil
		case "m":
			m.toggleMenu()
			return m, nil
		case "tab":
			return m, m.navigate(m.page.Relative(1), false)
		case "shift+tab":
			return m, m.navigate(m.page.Relative(-1), false)
		case "1", "2", "3", "4", "5":
			menu := page.Menu()
			idx := int(key[0] - '1')
			if idx < len(menu) {
				return m, m.navigate(menu[idx].ID, false)
			}
			return m, nil
		case "/":
			return m, m.enterSearchMode()
		case "n":
			if len(m.searchMatches) > 0 {
				m.nextSearchMatch()
				return m, nil
			}
		case "N":
			if len(m.searchMatches) > 0 {
				m.previousSearchMatch()
				return m, nil
			}
		}

		if m.handleContentKey(key) {
			return m, nil
		}

		m.anim.stop()
		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		m.syncWatcher()
		return m, cmd

	case tea.MouseMsg:
		m.anim.stop()
	}

	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	m.syncWatcher()
	return m, cmd
}

func (m *Model) handleContentKey(key string) bool {
	switch key {
	case "j":
		m.contentVP.ScrollDown(1)
	case "k":
		m.contentVP.ScrollUp(1)
	case "ctrl+d":
		m.contentVP.HalfPageDown()
	case "ctrl+u":
		m.contentVP.HalfPageUp()
	case "g":
		if m.pendingKey == "g" {
			m.anim.stop()
			m.contentVP.GotoTop()
			m.pendingKey = ""
			m.syncWatcher()
		} else {
			m.pendingKey = "g"
		}
		return true
	case "G":
		m.contentVP.GotoBottom()
	default:
		return false
	}
	m.pendingKey = ""
	m.anim.stop()
	m.syncWatcher()
	return true
}

func (m *Model) handleMenuKey(key string) (bool, tea.Cmd) {
	menu := page.Menu()
	switch key {
	case "j", "down":
		m.menuCursor = clamp(m.menuCursor+1, 0, len(menu)-1)
	case "k", "up":
		m.menuCursor = clamp(m.menuCursor-1, 0, len(menu)-1)
	case "enter":
		return true, m.navigate(menu[m.menuCursor].ID, false)
	case "esc":
		m.page.CloseMenu()
	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) toggleMenu() {
	m.page.ToggleMenu()
	if m.page.MenuOpen() {
		m.menuCursor = max(page.IndexOf(m.page.Active()), 0)
	}
}

func (m *Model) toggleTheme() {
	if _, err := m.page.ToggleTheme(); err != nil {
		m.err = err
		m.log.Warn("failed to toggle theme", "error", err)
		return
	}
	m.err = nil
	m.relayout()
}

// navigate scrolls to section id through the page, animated unless
// instant is set or smooth scrolling is off.
func (m *Model) navigate(id page.ID, instant bool) tea.Cmd {
	m.instant = instant
	m.page.Navigate(id)
	m.instant = false
	if !m.anim.pending {
		return nil
	}
	m.anim.pending = false
	return m.anim.frame()
}

func (m *Model) handleFrame(msg scrollFrameMsg) tea.Cmd {
	if !m.anim.running || msg.gen != m.anim.gen {
		return nil
	}
	offset, done := m.anim.step()
	m.setOffset(offset)
	if done || m.contentVP.YOffset != offset {
		m.anim.stop()
		return nil
	}
	return m.anim.frame()
}

// Locate implements page.Locator over the current layout.
func (m *Model) Locate(id page.ID) (int, bool) {
	return m.layout.Locate(id)
}

// ScrollTo implements page.Scroller.
func (m *Model) ScrollTo(line int) {
	target := clamp(line, 0, m.maxOffset())
	if !m.smooth || m.instant || !m.ready {
		m.anim.stop()
		m.setOffset(target)
		return
	}
	m.anim.retarget(m.contentVP.YOffset, target)
}

func (m *Model) setOffset(offset int) {
	m.contentVP.SetYOffset(offset)
	m.syncWatcher()
}

func (m *Model) maxOffset() int {
	return max(m.layout.Lines()-m.contentVP.Height, 0)
}

// syncWatcher feeds the visible line range to the section watcher.
func (m *Model) syncWatcher() {
	if m.watcher == nil || !m.page.Mounted() {
		return
	}
	m.watcher.Update(m.contentVP.YOffset, m.contentVP.Height)
}

func (m *Model) newWatcher(cb page.Callback) page.Watcher {
	w := page.NewViewportWatcher(cb)
	w.SetLayout(m.layout.Spans)
	m.watcher = w
	return w
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= headerHeight+footerHeight {
		return
	}

	m.width = width
	m.height = height
	m.ready = true

	m.contentVP.Width = max(width, minContentWidth)
	m.contentVP.Height = max(height-headerHeight-footerHeight, 1)
	m.relayout()
}

// relayout renders the portfolio for the current theme and width. The
// page is remounted when the set of sections changes.
func (m *Model) relayout() {
	if !m.ready {
		return
	}

	wrapWidth := max(m.contentVP.Width-m.contentVP.Style.GetHorizontalFrameSize(), 0)
	theme := m.page.Theme()
	if m.renderer == nil || m.renderer.Theme() != theme || m.renderer.Width() != wrapWidth {
		renderer, err := render.New(theme, wrapWidth)
		if err != nil {
			m.err = err
			return
		}
		m.renderer = renderer
	}

	layout, err := m.renderer.Render(render.Sections(m.portfolio))
	if err != nil {
		m.err = err
		return
	}
	m.err = nil

	offset := m.contentVP.YOffset
	changed := !sameSections(m.layout.Spans, layout.Spans)
	m.layout = layout
	m.contentVP.SetContent(layout.Content)
	m.contentVP.SetYOffset(offset)
	m.onContentChanged()

	if changed || !m.page.Mounted() {
		m.page.Mount(m, m, m.newWatcher)
	} else if m.watcher != nil {
		m.watcher.SetLayout(layout.Spans)
	}
	m.syncWatcher()

	if m.pendingSection != "" {
		id := m.pendingSection
		m.pendingSection = ""
		m.navigate(id, true)
	}
}

// shutdown releases the section watcher and the file watcher. It is safe
// to call more than once.
func (m *Model) shutdown() {
	m.anim.stop()
	m.page.Unmount()
	m.stopWatching()
}

func sameSections(a, b []page.Span) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
