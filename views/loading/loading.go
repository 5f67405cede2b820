package loadingview

import (
	"fmt"
	"strings"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/activation/store"
	"github.com/PasqualeAiello/io-app/i18n"
	"github.com/PasqualeAiello/io-app/ui"
	"github.com/PasqualeAiello/io-app/views/helpbar"
	"github.com/PasqualeAiello/io-app/views/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const ViewName = view.NameActivationLoading

// RetryMsg is sent when the user presses r on a failed activation.
type RetryMsg struct{}

type Model struct {
	width, height int
	tr            *i18n.Translator
	spinner       spinner.Model
	errMsg        string
}

func New(width, height int, tr *i18n.Translator) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.FrameBorderColor)
	return &Model{width: width, height: height, tr: tr, spinner: s}
}

// SetSnapshot switches the screen to the error dialog when the published
// result is a failure, and back to the spinner otherwise.
func (m *Model) SetSnapshot(s store.Snapshot) {
	if s.Result.Kind == activation.KindFailure {
		m.errMsg = s.Result.Err
		return
	}
	m.errMsg = ""
}

func (m *Model) Failed() bool  { return m.errMsg != "" }
func (m *Model) Init() tea.Cmd { return m.spinner.Tick }
func (m *Model) Name() string  { return ViewName }

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		if m.Failed() && msg.String() == "r" {
			return func() tea.Msg { return RetryMsg{} }
		}
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) View() string {
	if m.Failed() {
		return m.renderErrorDialog()
	}

	content := fmt.Sprintf("%s %s", m.spinner.View(), m.tr.T(i18n.LoadingBody))
	content = strings.TrimSpace(content)
	box := ui.RenderFramedBox(m.tr.T(i18n.LoadingTitle), "", content, "", 0)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderErrorDialog renders the error dialog with red styling
func (m *Model) renderErrorDialog() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)

	lines := ui.WrapText(m.tr.T(i18n.ErrorBody, m.errMsg), 70)
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("%s %s %s %s %s",
		helpStyle.Render("Press"),
		keyStyle.Render("<r>"),
		helpStyle.Render("to retry or"),
		keyStyle.Render("<esc>"),
		helpStyle.Render("to go back")))

	box := ui.RenderFramedBoxColor(m.tr.T(i18n.LoadingTitle), "", strings.Join(lines, "\n"), "", 0, ui.ErrorColor)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	if m.Failed() {
		return []helpbar.HelpEntry{
			{Key: "r", Desc: "Retry"},
			{Key: "esc", Desc: "Back"},
		}
	}
	return []helpbar.HelpEntry{
		{Key: "esc", Desc: "Cancel"},
	}
}

func (m *Model) OnEnter() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) OnExit() tea.Cmd {
	return nil
}
