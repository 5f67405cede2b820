package helpview

import (
	"fmt"
	"strings"

	"github.com/PasqualeAiello/io-app/views/helpbar"
	"github.com/PasqualeAiello/io-app/views/view"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = view.NameHelp

type Model struct {
	Viewable      viewport.Model
	width, height int
	commands      []CommandInfo
}

type CommandInfo struct {
	Name        string
	Description string
}

func New(width, height int, cmds []CommandInfo) *Model {
	var b strings.Builder
	for _, c := range cmds {
		fmt.Fprintf(&b, ":%-15s %s\n", c.Name, c.Description)
	}

	vp := viewport.New(max(width-4, 0), max(height-4, 0))
	vp.SetContent(strings.TrimRight(b.String(), "\n"))

	return &Model{
		Viewable: vp,
		width:    width,
		height:   height,
		commands: cmds,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string {
	return ViewName
}

func (m *Model) Commands() []CommandInfo { return m.commands }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "↑/↓", Desc: "scroll"},
		{Key: "esc", Desc: "close"},
	}
}

func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }
