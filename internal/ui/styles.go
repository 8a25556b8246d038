package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kyaoi/folio/internal/page"
)

type palette struct {
	header     lipgloss.Style
	fill       lipgloss.Style
	brand      lipgloss.Style
	navItem    lipgloss.Style
	navActive  lipgloss.Style
	themeIcon  lipgloss.Style
	menuBox    lipgloss.Style
	menuItem   lipgloss.Style
	menuCursor lipgloss.Style
	statusBar  lipgloss.Style
	errLine    lipgloss.Style
	helpBox    lipgloss.Style
}

type colors struct {
	fg, muted, accent, onAccent, bar, selection, err lipgloss.Color
}

var (
	darkColors = colors{
		fg:        lipgloss.Color("#c0caf5"),
		muted:     lipgloss.Color("#565f89"),
		accent:    lipgloss.Color("#7aa2f7"),
		onAccent:  lipgloss.Color("#1a1b26"),
		bar:       lipgloss.Color("#1f2335"),
		selection: lipgloss.Color("#283457"),
		err:       lipgloss.Color("#ff6b6b"),
	}
	lightColors = colors{
		fg:        lipgloss.Color("#343b58"),
		muted:     lipgloss.Color("#9699a3"),
		accent:    lipgloss.Color("#2e7de9"),
		onAccent:  lipgloss.Color("#e1e2e7"),
		bar:       lipgloss.Color("#d5d6db"),
		selection: lipgloss.Color("#b7c1e3"),
		err:       lipgloss.Color("#f52a65"),
	}
)

func paletteFor(theme page.Theme) palette {
	c := darkColors
	if theme == page.Light {
		c = lightColors
	}
	return palette{
		header:    lipgloss.NewStyle().Padding(0, 1).Background(c.bar).Foreground(c.fg),
		fill:      lipgloss.NewStyle().Background(c.bar),
		brand:     lipgloss.NewStyle().Bold(true).Foreground(c.accent).Background(c.bar),
		navItem:   lipgloss.NewStyle().Padding(0, 1).Foreground(c.fg).Background(c.bar),
		navActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(c.onAccent).Background(c.accent),
		themeIcon: lipgloss.NewStyle().Foreground(c.accent).Background(c.bar),
		menuBox: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.accent),
		menuItem:   lipgloss.NewStyle().Foreground(c.fg),
		menuCursor: lipgloss.NewStyle().Bold(true).Foreground(c.fg).Background(c.selection),
		statusBar:  lipgloss.NewStyle().Padding(0, 1).Foreground(c.muted).Background(c.bar),
		errLine:    lipgloss.NewStyle().Padding(0, 1).Foreground(c.err),
		helpBox: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(c.accent).
			Background(c.bar),
	}
}

// themeIndicator returns the header icon for theme: a sun while dark, a
// moon while light.
func themeIndicator(theme page.Theme) string {
	if theme == page.Light {
		return "☾"
	}
	return "☀"
}
