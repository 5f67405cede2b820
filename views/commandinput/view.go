package commandinput

import (
	"strings"

	"github.com/PasqualeAiello/io-app/utils"

	"github.com/charmbracelet/lipgloss"
)

var (
	cmdBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#303030")).
			Foreground(lipgloss.Color("#00d7ff")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")).
			Bold(true).
			Padding(0, 1)

	suggestionStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// View renders the command bar and optional error message.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	view := cmdBarStyle.Render(m.input.View())

	if m.errorMsg != "" {
		view += "\n" + errStyle.Render(m.errorMsg)
	} else if len(m.suggestions) > 0 && m.input.Value() != "" {
		typed := strings.TrimSpace(m.input.Value())
		parts := make([]string, len(m.suggestions))
		for i, s := range m.suggestions {
			parts[i] = utils.HighlightMatches(s, typed, utils.FindAllMatches(s, typed))
		}
		view += "\n" + suggestionStyle.Render(strings.Join(parts, "  "))
	}

	return view
}
