// Package content defines the portfolio data and loads it from Markdown
// files with YAML front matter.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// NoDemo is the Demo value of a project without a live demo.
const NoDemo = "#"

// ErrNoMatchingProjects is returned when a technology filter leaves no
// projects.
var ErrNoMatchingProjects = errors.New("no projects match")

// Portfolio is everything shown on the page.
type Portfolio struct {
	Name       string       `yaml:"name"`
	Welcome    string       `yaml:"welcome"`
	Highlights []string     `yaml:"highlights"`
	Education  []Education  `yaml:"education"`
	Projects   []Project    `yaml:"projects"`
	Skills     []SkillGroup `yaml:"skills"`
	Contacts   []Contact    `yaml:"contacts"`

	// About is the Markdown body of the portfolio file.
	About string `yaml:"-"`
}

// Education is one degree or course of study.
type Education struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Duration    string `yaml:"duration"`
	Description string `yaml:"description"`
}

// Project is one entry of the project grid.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Source      string   `yaml:"github"`
	Demo        string   `yaml:"demo"`
	Image       string   `yaml:"image"`
	Order       int      `yaml:"order"`
}

// HasDemo reports whether the project links a live demo.
func (p Project) HasDemo() bool {
	return p.Demo != NoDemo
}

// UsesTech reports whether tag is one of the project's technologies,
// ignoring case.
func (p Project) UsesTech(tag string) bool {
	for _, t := range p.Tech {
		if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(tag)) {
			return true
		}
	}
	return false
}

// SkillGroup is a titled list of skills.
type SkillGroup struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// Contact is one contact line. URL is optional.
type Contact struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// FilterByTech returns a copy of p that only lists projects using tag.
func (p *Portfolio) FilterByTech(tag string) (*Portfolio, error) {
	filtered := *p
	filtered.Projects = nil
	for _, project := range p.Projects {
		if project.UsesTech(tag) {
			filtered.Projects = append(filtered.Projects, project)
		}
	}
	if len(filtered.Projects) == 0 {
		return nil, fmt.Errorf("%w technology %q", ErrNoMatchingProjects, tag)
	}
	return &filtered, nil
}

// Technologies returns every distinct technology tag in first-seen order.
func (p *Portfolio) Technologies() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, project := range p.Projects {
		for _, t := range project.Tech {
			key := strings.ToLower(t)
			if seen[key] {
				continue
			}
			seen[key] = true
			tags = append(tags, t)
		}
	}
	return tags
}

func (p *Portfolio) normalize() {
	p.About = strings.TrimSpace(p.About)
	for i := range p.Projects {
		p.Projects[i].normalize()
	}
}

func (p *Project) normalize() {
	p.Description = strings.TrimSpace(p.Description)
	if strings.TrimSpace(p.Demo) == "" {
		p.Demo = NoDemo
	}
}
