package view

import (
	"github.com/PasqualeAiello/io-app/views/helpbar"

	tea "github.com/charmbracelet/bubbletea"
)

type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Name() string
	ShortHelpItems() []helpbar.HelpEntry
	OnEnter() tea.Cmd
	OnExit() tea.Cmd
}
