package helpbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HelpEntry struct {
	Key  string
	Desc string
}

type Model struct {
	globalHelp  []HelpEntry
	viewHelp    []HelpEntry
	width       int
	rows        int
	minColWidth int
}

const (
	defaultMinColWidth = 20
	defaultRows        = 4
)

var (
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	descStyle = lipgloss.NewStyle().Faint(true)
)

func New(width int) *Model {
	return &Model{
		globalHelp:  []HelpEntry{{Key: ":", Desc: "command"}, {Key: "?", Desc: "help"}},
		width:       width,
		rows:        defaultRows,
		minColWidth: defaultMinColWidth,
	}
}

func (m *Model) WithGlobalHelp(entries []HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

// View renders the status panel on the left and the key bindings in
// columns of at most m.rows entries next to it.
func (m *Model) View(status string) string {
	all := append(append([]HelpEntry{}, m.globalHelp...), m.viewHelp...)
	if len(all) == 0 {
		return status
	}

	available := m.width - lipgloss.Width(status) - 2
	maxCols := available / m.minColWidth
	if maxCols < 1 {
		return status
	}

	var cols []string
	for start := 0; start < len(all) && len(cols) < maxCols; start += m.rows {
		end := start + m.rows
		if end > len(all) {
			end = len(all)
		}
		cols = append(cols, renderColumn(all[start:end]))
	}

	help := lipgloss.JoinHorizontal(lipgloss.Top, interleave(cols, "   ")...)
	return lipgloss.JoinHorizontal(lipgloss.Top, status, "  ", help)
}

func renderColumn(entries []HelpEntry) string {
	keyWidth := 0
	for _, e := range entries {
		if w := lipgloss.Width("<" + e.Key + ">"); w > keyWidth {
			keyWidth = w
		}
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		key := "<" + e.Key + ">"
		pad := strings.Repeat(" ", keyWidth-lipgloss.Width(key)+2)
		lines = append(lines, keyStyle.Render(key)+pad+descStyle.Render(e.Desc))
	}
	return strings.Join(lines, "\n")
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
