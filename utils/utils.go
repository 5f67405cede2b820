package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("205")).Foreground(lipgloss.Color("0"))

// HighlightMatches renders every occurrence of term in text, at the byte
// offsets returned by FindAllMatches, with the highlight style.
func HighlightMatches(text, term string, matches []int) string {
	if term == "" || len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, idx := range matches {
		if idx < last || idx+len(term) > len(text) {
			continue
		}
		b.WriteString(text[last:idx])
		b.WriteString(highlightStyle.Render(text[idx : idx+len(term)]))
		last = idx + len(term)
	}
	b.WriteString(text[last:])
	return b.String()
}

// FindAllMatches returns the case-insensitive, non-overlapping offsets of
// term in text.
func FindAllMatches(text, term string) []int {
	if term == "" {
		return nil
	}
	var matches []int
	textLower := strings.ToLower(text)
	termLower := strings.ToLower(term)
	idx := 0
	for {
		i := strings.Index(textLower[idx:], termLower)
		if i == -1 {
			break
		}
		matches = append(matches, idx+i)
		idx += i + len(term)
	}
	return matches
}
