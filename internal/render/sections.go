// Package render turns portfolio content into the terminal document and
// records where each section lives in it.
package render

import (
	"fmt"
	"strings"

	"github.com/kyaoi/folio/internal/content"
	"github.com/kyaoi/folio/internal/page"
)

// Section is the Markdown source of one page section.
type Section struct {
	ID       page.ID
	Markdown string
}

// Sections builds the page sections in menu order. Sections without
// content are left out; home is always present.
func Sections(p *content.Portfolio) []Section {
	var out []Section
	add := func(id page.ID, md string) {
		if strings.TrimSpace(md) != "" {
			out = append(out, Section{ID: id, Markdown: md})
		}
	}
	add(page.Home, homeMarkdown(p))
	add(page.Education, educationMarkdown(p.Education))
	add(page.Projects, projectsMarkdown(p.Projects))
	add(page.Skills, skillsMarkdown(p.Skills))
	add(page.Contact, contactMarkdown(p.Contacts))
	return out
}

func homeMarkdown(p *content.Portfolio) string {
	var b strings.Builder
	if p.Welcome != "" {
		fmt.Fprintf(&b, "## %s\n\n", p.Welcome)
	}
	if p.Name != "" {
		fmt.Fprintf(&b, "# Hi! I am %s\n\n", p.Name)
	}
	if p.About != "" {
		b.WriteString(p.About)
		b.WriteString("\n\n")
	}
	if len(p.Highlights) > 0 {
		quoted := make([]string, len(p.Highlights))
		for i, h := range p.Highlights {
			quoted[i] = "**" + h + "**"
		}
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(quoted, " · "))
	}
	if b.Len() == 0 {
		return "# Home\n"
	}
	return b.String()
}

func educationMarkdown(items []content.Education) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("# Education\n\n")
	for _, e := range items {
		fmt.Fprintf(&b, "### %s\n\n", e.Degree)
		meta := joinNonEmpty(" · ", bold(e.Institution), e.Duration)
		if meta != "" {
			b.WriteString(meta + "\n\n")
		}
		if e.Description != "" {
			b.WriteString(e.Description + "\n\n")
		}
	}
	return b.String()
}

func projectsMarkdown(projects []content.Project) string {
	if len(projects) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("# My Projects\n\n")
	for _, p := range projects {
		b.WriteString(ProjectMarkdown(p))
	}
	return b.String()
}

// ProjectMarkdown renders one project card. The Demo link is only present
// when the project has a demo.
func ProjectMarkdown(p content.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", p.Title)
	if p.Image != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", p.Title, p.Image)
	}
	if p.Description != "" {
		b.WriteString(p.Description + "\n\n")
	}
	if len(p.Tech) > 0 {
		tags := make([]string, len(p.Tech))
		for i, t := range p.Tech {
			tags[i] = "`" + t + "`"
		}
		b.WriteString(strings.Join(tags, " ") + "\n\n")
	}

	var links []string
	if p.Source != "" {
		links = append(links, fmt.Sprintf("[Code](%s)", p.Source))
	}
	if p.HasDemo() {
		links = append(links, fmt.Sprintf("[Demo](%s)", p.Demo))
	}
	if len(links) > 0 {
		b.WriteString(strings.Join(links, " · ") + "\n\n")
	}
	return b.String()
}

func skillsMarkdown(groups []content.SkillGroup) string {
	if len(groups) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("# Skills\n\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", g.Name, strings.Join(g.Items, ", "))
	}
	return b.String()
}

func contactMarkdown(contacts []content.Contact) string {
	if len(contacts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("# Contact Me\n\n")
	for _, c := range contacts {
		if c.URL != "" {
			fmt.Fprintf(&b, "- [%s](%s)\n", c.Label, c.URL)
		} else {
			fmt.Fprintf(&b, "- %s\n", c.Label)
		}
	}
	return b.String()
}

func bold(s string) string {
	if s == "" {
		return ""
	}
	return "**" + s + "**"
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
