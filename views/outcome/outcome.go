// Package outcomeview renders the terminal screens of an activation
// attempt: completed, timeout, eligibility expired and already active.
package outcomeview

import (
	"strings"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/i18n"
	"github.com/PasqualeAiello/io-app/ui"
	"github.com/PasqualeAiello/io-app/views/helpbar"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ContinueMsg is sent when the user acknowledges the outcome.
type ContinueMsg struct{}

type Model struct {
	route         activation.Route
	width, height int
	tr            *i18n.Translator
	bonus         *activation.Bonus
}

// New builds the screen for route. bonus may be nil; it is only rendered on
// the completed screen.
func New(route activation.Route, width, height int, tr *i18n.Translator, bonus *activation.Bonus) *Model {
	return &Model{route: route, width: width, height: height, tr: tr, bonus: bonus}
}

func (m *Model) Init() tea.Cmd { return nil }
func (m *Model) Name() string  { return string(m.route) }

func (m *Model) SetBonus(b *activation.Bonus) { m.bonus = b }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return func() tea.Msg { return ContinueMsg{} }
		}
	}
	return nil
}

func (m *Model) View() string {
	title, body, border := m.texts()
	content := strings.Join(ui.WrapText(body, 60), "\n")
	footer := ui.FaintStyle.Render(m.tr.T(i18n.ContinueHint))
	box := ui.RenderFramedBoxColor(title, "", content, "\n"+footer, 0, border)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) texts() (title, body string, border lipgloss.Color) {
	switch m.route {
	case activation.RouteCompleted:
		if m.bonus != nil {
			body = m.tr.T(i18n.CompletedBody, m.bonus.Code, m.tr.Amount(m.bonus.MaxAmount))
		}
		return m.tr.T(i18n.CompletedTitle), body, ui.SuccessColor
	case activation.RouteTimeout:
		return m.tr.T(i18n.TimeoutTitle), m.tr.T(i18n.TimeoutBody), ui.WarningColor
	case activation.RouteEligibilityExpired:
		return m.tr.T(i18n.ExpiredTitle), m.tr.T(i18n.ExpiredBody), ui.ErrorColor
	case activation.RouteExists:
		return m.tr.T(i18n.ExistsTitle), m.tr.T(i18n.ExistsBody), ui.WarningColor
	default:
		return string(m.route), "", ui.FrameBorderColor
	}
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "enter", Desc: "Continue"},
		{Key: "esc", Desc: "Back"},
	}
}

func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }
