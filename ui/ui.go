package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	FrameHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("75")).
				Bold(true)

	FrameBorderColor = lipgloss.Color("117")

	ErrorColor   = lipgloss.Color("196")
	SuccessColor = lipgloss.Color("42")
	WarningColor = lipgloss.Color("214")

	StatusStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252"))

	FaintStyle = lipgloss.NewStyle().Faint(true)
)

// Rainbow colours the breadcrumb of the navigation history.
var Rainbow = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("170")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("81")),
}

// RenderFramedBox draws a rounded frame with a centred title, an optional
// header line, the content and an optional footer.
// If width <= 0 the frame fits the widest line plus padding.
// ANSI sequences in content are preserved.
func RenderFramedBox(title, header, content, footer string, width int) string {
	return RenderFramedBoxColor(title, header, content, footer, width, FrameBorderColor)
}

func RenderFramedBoxColor(title, header, content, footer string, width int, border lipgloss.Color) string {
	lines := strings.Split(content, "\n")
	var footerLines []string
	if footer != "" {
		footerLines = strings.Split(footer, "\n")
	}

	if width <= 0 {
		widest := lipgloss.Width(header)
		for _, l := range append(lines, footerLines...) {
			if w := lipgloss.Width(l); w > widest {
				widest = w
			}
		}
		width = widest + 4
	}

	borderStyle := lipgloss.NewStyle().Foreground(border)
	inner := width - 2
	titleStyled := FrameTitleStyle.Render(" " + title + " ")

	leftPad := (inner - lipgloss.Width(titleStyled)) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := inner - leftPad - lipgloss.Width(titleStyled)
	if rightPad < 0 {
		rightPad = 0
	}

	out := []string{fmt.Sprintf("%s%s%s%s%s",
		borderStyle.Render("╭"),
		borderStyle.Render(strings.Repeat("─", leftPad)),
		titleStyled,
		borderStyle.Render(strings.Repeat("─", rightPad)),
		borderStyle.Render("╮"),
	)}

	row := func(s string) string {
		return borderStyle.Render("│") + padLine(s, inner) + borderStyle.Render("│")
	}

	if header != "" {
		out = append(out, row(FrameHeaderStyle.Render(header)))
	}
	for _, l := range lines {
		out = append(out, row(l))
	}
	for _, l := range footerLines {
		out = append(out, row(l))
	}

	out = append(out, borderStyle.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(out, "\n")
}

// padLine fits a line to width, preserving ANSI sequences
func padLine(line string, width int) string {
	line = " " + line
	l := lipgloss.Width(line)
	if l >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + strings.Repeat(" ", width-l)
}

// WrapText breaks text into lines of at most width columns on word boundaries.
func WrapText(text string, width int) []string {
	if lipgloss.Width(text) <= width {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case lipgloss.Width(current)+1+lipgloss.Width(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
