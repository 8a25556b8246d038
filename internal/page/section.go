// Package page holds the state of the single portfolio page: the theme,
// the active section and the navigation menu, plus the viewport watcher
// that keeps the active section in sync with the scroll position.
package page

// ID identifies a page section.
type ID string

// Section identifiers in page order.
const (
	Home      ID = "home"
	Education ID = "education"
	Projects  ID = "projects"
	Skills    ID = "skills"
	Contact   ID = "contact"
)

// MenuItem is one navigation entry.
type MenuItem struct {
	ID    ID
	Label string
}

// Menu returns the fixed navigation entries in page order.
func Menu() []MenuItem {
	return []MenuItem{
		{ID: Home, Label: "Home"},
		{ID: Education, Label: "Education"},
		{ID: Projects, Label: "Projects"},
		{ID: Skills, Label: "Skills"},
		{ID: Contact, Label: "Contact"},
	}
}

// IndexOf returns the menu position of id, or -1.
func IndexOf(id ID) int {
	for i, item := range Menu() {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Span is the half-open line range [Start, End) a section occupies in the
// rendered document.
type Span struct {
	ID    ID
	Start int
	End   int
}

// Height returns the number of lines in the span.
func (s Span) Height() int {
	return s.End - s.Start
}

// Locator finds the first line of a section. ok is false when the section
// is not part of the document.
type Locator interface {
	Locate(id ID) (line int, ok bool)
}

// Scroller moves the viewport so that line becomes its top line.
type Scroller interface {
	ScrollTo(line int)
}
