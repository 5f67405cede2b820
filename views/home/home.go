package homeview

import (
	"fmt"
	"strings"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/activation/store"
	"github.com/PasqualeAiello/io-app/i18n"
	"github.com/PasqualeAiello/io-app/ui"
	"github.com/PasqualeAiello/io-app/views/helpbar"
	"github.com/PasqualeAiello/io-app/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const ViewName = view.NameHome

// ActivateMsg asks the app to start an activation attempt.
type ActivateMsg struct{}

type Model struct {
	width, height int
	tr            *i18n.Translator
	last          *store.Snapshot
}

func New(width, height int, tr *i18n.Translator) *Model {
	return &Model{width: width, height: height, tr: tr}
}

func (m *Model) Init() tea.Cmd { return nil }
func (m *Model) Name() string  { return ViewName }

// SetSnapshot records the last published result for the summary line.
func (m *Model) SetSnapshot(s store.Snapshot) {
	m.last = &s
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.String() == "a" {
			return func() tea.Msg { return ActivateMsg{} }
		}
	}
	return nil
}

func (m *Model) View() string {
	lines := []string{m.tr.T(i18n.HomeBody)}
	if m.last != nil {
		lines = append(lines, "", ui.FaintStyle.Render(summary(m.last)))
	}
	box := ui.RenderFramedBox(m.tr.T(i18n.HomeTitle), "", strings.Join(lines, "\n"), "", 0)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func summary(s *store.Snapshot) string {
	r := s.Result
	switch r.Kind {
	case activation.KindFailure:
		return fmt.Sprintf("last attempt failed: %s", r.Err)
	case activation.KindSuccess:
		if r.Bonus != nil && r.Bonus.Code != "" {
			return fmt.Sprintf("last attempt: %s (%s)", r.Status, r.Bonus.Code)
		}
		return fmt.Sprintf("last attempt: %s", r.Status)
	}
	return "activation in progress"
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "a", Desc: "Activate"},
		{Key: "q", Desc: "Quit"},
	}
}

func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }
