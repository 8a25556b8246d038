package app

import (
	"fmt"
	"strings"

	"github.com/kyaoi/folio/internal/content"
)

// FilterProjects narrows the portfolio to the projects using tech. When
// nothing matches, the error lists the technologies that would.
func FilterProjects(p *content.Portfolio, tech string) (*content.Portfolio, error) {
	filtered, err := p.FilterByTech(tech)
	if err == nil {
		return filtered, nil
	}
	if tags := p.Technologies(); len(tags) > 0 {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(tags, ", "))
	}
	return nil, err
}
