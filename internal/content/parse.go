package content

import (
	"fmt"
	"io"

	"github.com/adrg/frontmatter"
)

// Parse reads a portfolio document: YAML front matter with the structured
// data followed by the Markdown About text.
func Parse(r io.Reader) (*Portfolio, error) {
	var p Portfolio
	body, err := frontmatter.Parse(r, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to parse portfolio front matter: %w", err)
	}
	p.About = string(body)
	p.normalize()
	return &p, nil
}

// ParseProject reads a project document. The Markdown body becomes the
// description unless the front matter already sets one.
func ParseProject(r io.Reader) (Project, error) {
	var p Project
	body, err := frontmatter.Parse(r, &p)
	if err != nil {
		return Project{}, fmt.Errorf("failed to parse project front matter: %w", err)
	}
	if p.Description == "" {
		p.Description = string(body)
	}
	p.normalize()
	return p, nil
}
