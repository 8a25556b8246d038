package page

import "fmt"

// Theme is the color scheme of the page.
type Theme string

// Supported themes.
const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ThemeKey is the preference key the theme is stored under.
const ThemeKey = "theme"

// DefaultTheme is used when no valid preference is stored.
const DefaultTheme = Dark

// ParseTheme converts a stored value to a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// Toggled returns the opposite theme. Anything that is not Light toggles
// to Light.
func (t Theme) Toggled() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	return string(t)
}
