package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func (m *Model) enterSearchMode() tea.Cmd {
	m.searchActive = true
	m.pendingKey = ""
	if m.searchQuery != "" {
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.CursorEnd()
	} else {
		m.searchInput.SetValue("")
	}
	return m.searchInput.Focus()
}

func (m *Model) exitSearchMode() {
	m.searchActive = false
	m.searchInput.Blur()
}

func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchIndex = -1
	m.err = nil
}

func (m *Model) searchStatusLine() string {
	if m.searchQuery == "" {
		return ""
	}
	total := len(m.searchMatches)
	if total == 0 || m.searchIndex < 0 {
		return fmt.Sprintf("/%s (0/0)", m.searchQuery)
	}
	return fmt.Sprintf("/%s (%d/%d)", m.searchQuery, m.searchIndex+1, total)
}

func (m *Model) performSearch(query string) {
	query = strings.TrimSpace(query)
	m.searchQuery = query
	m.searchMatches = findSearchMatches(m.layout.Content, query)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		m.err = fmt.Errorf("no match for %q", query)
		return
	}
	m.searchIndex = 0
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) nextSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	if m.searchIndex < 0 {
		m.searchIndex = 0
	} else {
		m.searchIndex = (m.searchIndex + 1) % len(m.searchMatches)
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) previousSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	if m.searchIndex <= 0 {
		m.searchIndex = len(m.searchMatches) - 1
	} else {
		m.searchIndex--
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) gotoSearchMatch() {
	if len(m.searchMatches) == 0 || m.searchIndex < 0 {
		return
	}
	m.anim.stop()
	m.setOffset(m.searchMatches[m.searchIndex])
}

// onContentChanged recomputes matches after a re-render and keeps the
// cursor on the match closest to the previous one.
func (m *Model) onContentChanged() {
	if m.searchQuery == "" {
		return
	}

	prevLine := -1
	if m.searchIndex >= 0 && m.searchIndex < len(m.searchMatches) {
		prevLine = m.searchMatches[m.searchIndex]
	}

	m.searchMatches = findSearchMatches(m.layout.Content, m.searchQuery)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		m.err = fmt.Errorf("no match for %q", m.searchQuery)
		return
	}

	if prevLine >= 0 {
		m.searchIndex = closestMatchIndex(m.searchMatches, prevLine)
	} else if m.searchIndex < 0 || m.searchIndex >= len(m.searchMatches) {
		m.searchIndex = 0
	}
}

func findSearchMatches(content, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" || content == "" {
		return nil
	}

	stripped := ansi.Strip(content)
	lowerContent := strings.ToLower(stripped)
	lowerQuery := strings.ToLower(query)

	var matches []int
	offset := 0
	for {
		pos := strings.Index(lowerContent[offset:], lowerQuery)
		if pos == -1 {
			break
		}
		absolute := offset + pos
		line := strings.Count(lowerContent[:absolute], "\n")
		if len(matches) == 0 || matches[len(matches)-1] != line {
			matches = append(matches, line)
		}
		offset = absolute + len(lowerQuery)
	}
	return matches
}

func closestMatchIndex(matches []int, line int) int {
	if len(matches) == 0 {
		return 0
	}
	bestIndex := 0
	bestDiff := absInt(matches[0] - line)
	for i := 1; i < len(matches); i++ {
		if diff := absInt(matches[i] - line); diff < bestDiff {
			bestDiff = diff
			bestIndex = i
		}
	}
	return bestIndex
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
