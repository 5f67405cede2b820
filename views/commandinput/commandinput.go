package commandinput

import (
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the command input bar (like in k9s).
type Model struct {
	input    textinput.Model
	visible  bool
	history  []string
	histPos  int
	errorMsg string

	suggest     func(prefix string) []string
	suggestions []string
	selected    int
}

// New creates a new command input model. suggest completes command names
// for the tab key; it may be nil.
func New(suggest func(prefix string) []string) *Model {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.CharLimit = 256

	return &Model{
		input:   ti,
		suggest: suggest,
	}
}

// Visible returns true if the command bar is visible.
func (m *Model) Visible() bool { return m.visible }

// Show makes the command bar visible and focuses the input.
func (m *Model) Show() tea.Cmd {
	m.visible = true
	m.errorMsg = ""
	m.input.Focus()
	m.refreshSuggestions()
	return textinput.Blink
}

// Hide hides the command bar and clears its state.
func (m *Model) Hide() {
	m.visible = false
	m.errorMsg = ""
	m.input.Blur()
	m.input.Reset()
	m.suggestions = nil
	m.selected = 0
}

// ShowError displays an error message (without losing focus).
func (m *Model) ShowError(msg string) {
	m.errorMsg = msg
	m.visible = true
	m.input.Focus()
}

func (m *Model) Error() string { return m.errorMsg }

func (m *Model) Value() string { return m.input.Value() }

func (m *Model) Suggestions() []string { return m.suggestions }

func (m *Model) refreshSuggestions() {
	m.selected = 0
	if m.suggest == nil {
		m.suggestions = nil
		return
	}
	m.suggestions = m.suggest(m.input.Value())
	sort.Strings(m.suggestions)
}
