package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/folio/internal/page"
)

// Layout is the rendered document and the line span of every section.
type Layout struct {
	Content string
	Spans   []page.Span
}

// Locate implements page.Locator.
func (l Layout) Locate(id page.ID) (int, bool) {
	for _, s := range l.Spans {
		if s.ID == id {
			return s.Start, true
		}
	}
	return 0, false
}

// Lines returns the number of lines in the document.
func (l Layout) Lines() int {
	if len(l.Spans) == 0 {
		return 0
	}
	return l.Spans[len(l.Spans)-1].End
}

// StyleFor returns the glamour style used for theme.
func StyleFor(theme page.Theme) string {
	if theme == page.Light {
		return styles.LightStyle
	}
	return styles.TokyoNightStyle
}

// Renderer renders sections with the style of one theme at a fixed width.
type Renderer struct {
	tr    *glamour.TermRenderer
	theme page.Theme
	width int
}

// New creates a renderer. A width of zero disables word wrapping.
func New(theme page.Theme, width int) (*Renderer, error) {
	if width < 0 {
		width = 0
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(StyleFor(theme)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr, theme: theme, width: width}, nil
}

// Theme returns the theme the renderer was created for.
func (r *Renderer) Theme() page.Theme {
	return r.theme
}

// Width returns the wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render renders every section and lays them out one after another,
// separated by a blank line that belongs to the preceding section.
func (r *Renderer) Render(sections []Section) (Layout, error) {
	var (
		lines []string
		spans []page.Span
	)
	for i, s := range sections {
		out, err := r.tr.Render(s.Markdown)
		if err != nil {
			return Layout{}, err
		}
		block := trimBlankLines(strings.Split(out, "\n"))
		if len(block) == 0 {
			block = []string{""}
		}
		if i < len(sections)-1 {
			block = append(block, "")
		}
		start := len(lines)
		lines = append(lines, block...)
		spans = append(spans, page.Span{ID: s.ID, Start: start, End: len(lines)})
	}
	return Layout{Content: strings.Join(lines, "\n"), Spans: spans}, nil
}

func trimBlankLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return lines[start:end]
}

func isBlank(line string) bool {
	return strings.TrimSpace(ansi.Strip(line)) == ""
}
