package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kyaoi/folio/internal/page"
)

const menuControl = "☰ Menu"

// collapsed reports whether the nav bar is folded into the menu control.
func (m *Model) collapsed() bool {
	return m.width < m.breakpoint
}

func (m *Model) headerView(p palette) string {
	var brand string
	if m.portfolio != nil && m.portfolio.Name != "" {
		brand = p.brand.Render(m.portfolio.Name)
	}

	var nav string
	if m.collapsed() {
		style := p.navItem
		if m.page.MenuOpen() {
			style = p.navActive
		}
		nav = style.Render(menuControl)
	} else {
		var items []string
		for _, item := range page.Menu() {
			if _, ok := m.layout.Locate(item.ID); !ok {
				continue
			}
			style := p.navItem
			if item.ID == m.page.Active() {
				style = p.navActive
			}
			items = append(items, style.Render(item.Label))
		}
		nav = lipgloss.JoinHorizontal(lipgloss.Top, items...)
	}

	icon := p.themeIcon.Render(themeIndicator(m.page.Theme()))
	if brand != "" {
		brand += p.fill.Render("  ")
	}
	inner := max(m.width-p.header.GetHorizontalFrameSize(), 0)
	gap := max(inner-lipgloss.Width(brand)-lipgloss.Width(nav)-lipgloss.Width(icon), 1)
	line := brand + nav + p.fill.Render(strings.Repeat(" ", gap)) + icon

	return p.header.Width(m.width).MaxWidth(m.width).Render(line)
}

func (m *Model) menuView(p palette) string {
	var lines []string
	for i, item := range page.Menu() {
		cursor := "  "
		style := p.menuItem
		if i == m.menuCursor {
			cursor = "> "
			style = p.menuCursor
		}
		label := fmt.Sprintf("%s%d %s", cursor, i+1, item.Label)
		if item.ID == m.page.Active() {
			label += " •"
		}
		lines = append(lines, style.Render(label))
	}
	return p.menuBox.Render(strings.Join(lines, "\n"))
}

func (m *Model) statusView(p palette) string {
	width := m.width
	switch {
	case m.searchActive:
		return p.statusBar.Width(width).MaxWidth(width).Render(m.searchInput.View())
	case m.err != nil:
		return p.errLine.Width(width).MaxWidth(width).Render(m.err.Error())
	case m.searchQuery != "":
		return p.statusBar.Width(width).MaxWidth(width).Render(m.searchStatusLine())
	}

	left := m.source
	if m.techFilter != "" {
		left += " · tech: " + m.techFilter
	}
	right := sectionLabel(m.page.Active()) + " · ? help"
	inner := max(width-p.statusBar.GetHorizontalFrameSize(), 0)
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return p.statusBar.Width(width).MaxWidth(width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) helpView(p palette) string {
	lines := []string{
		"Help (? / Esc to close)",
		"j / k, arrows   : scroll",
		"Ctrl+d / Ctrl+u : half page down / up",
		"gg / G          : top / bottom",
		"1 - 5           : jump to a section",
		"Tab / Shift+Tab : next / previous section",
		"m               : toggle the menu",
		"t               : toggle light / dark theme",
		"/               : search",
		"n / N           : next / previous match",
		"q / Ctrl+c      : quit",
	}
	return p.helpBox.Render(strings.Join(lines, "\n"))
}

func sectionLabel(id page.ID) string {
	if idx := page.IndexOf(id); idx >= 0 {
		return page.Menu()[idx].Label
	}
	return string(id)
}
