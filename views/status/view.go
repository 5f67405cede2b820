package statusview

import (
	"fmt"
	"strings"
	"time"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/ui"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func (m *Model) View() string {
	rows := []string{
		row("io-app", m.version),
		row("Backend", m.info.Backend),
		row("Locale", m.info.Locale),
		row("Status", m.statusLine()),
	}
	if len(m.info.History) > 0 {
		rows = append(rows, row("History", strings.Join(m.info.History, " › ")))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) statusLine() string {
	if m.info.Seq == 0 {
		if m.info.Active {
			return ui.SpinnerCharAt(m.spinner)
		}
		return "idle"
	}

	var s string
	switch m.info.Kind {
	case activation.KindFailure:
		s = lipgloss.NewStyle().Foreground(ui.ErrorColor).Render("failed: " + m.info.Err)
	case activation.KindRequest:
		s = string(activation.StatusProgress)
	default:
		s = colorFor(m.info.Status).Render(string(m.info.Status))
	}
	if m.info.Active {
		s = ui.SpinnerCharAt(m.spinner) + " " + s
	}
	return fmt.Sprintf("%s  #%d %s", s, m.info.Seq, ago(m.now(), m.info.Updated))
}

func colorFor(s activation.Status) lipgloss.Style {
	switch s {
	case activation.StatusSuccess:
		return lipgloss.NewStyle().Foreground(ui.SuccessColor)
	case activation.StatusError, activation.StatusEligibilityExpired:
		return lipgloss.NewStyle().Foreground(ui.ErrorColor)
	default:
		return lipgloss.NewStyle().Foreground(ui.WarningColor)
	}
}

func ago(now, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t).Round(time.Second)
	if d < time.Second {
		return "just now"
	}
	return d.String() + " ago"
}

func row(label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}
