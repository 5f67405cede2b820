package confirmdialog

import (
	"fmt"

	"github.com/PasqualeAiello/io-app/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ResultMsg struct {
	Confirmed bool
}

type Model struct {
	Visible bool
	Message string
}

func New() *Model {
	return &Model{}
}

// Show opens the dialog with msg.
func (m *Model) Show(msg string) {
	m.Visible = true
	m.Message = msg
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.Visible {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "y", "Y":
		m.Visible = false
		return func() tea.Msg { return ResultMsg{Confirmed: true} }
	case "n", "N", "esc":
		m.Visible = false
		return func() tea.Msg { return ResultMsg{Confirmed: false} }
	}
	return nil
}

func (m *Model) View() string {
	if !m.Visible {
		return ""
	}

	content := lipgloss.NewStyle().Padding(1, 2).Render(
		fmt.Sprintf("⚠️  %s\n\n[y] Yes   [n] No", m.Message),
	)
	return ui.RenderFramedBoxColor("Confirm", "", content, "", 0, ui.WarningColor)
}
