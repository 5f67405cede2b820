package helpview

import (
	"github.com/PasqualeAiello/io-app/ui"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#808080")).
		Render("[press esc to go back]")

	return ui.RenderFramedBox("Available Commands", "", m.Viewable.View(), "\n"+footer, m.width)
}
