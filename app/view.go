// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"github.com/PasqualeAiello/io-app/ui"
	"github.com/PasqualeAiello/io-app/views/helpbar"
	"github.com/PasqualeAiello/io-app/views/view"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	// Build global help - exclude "?" when already in help view
	globalHelp := []helpbar.HelpEntry{{Key: ":", Desc: "Command"}, {Key: "?", Desc: "Help"}}
	if m.currentView.Name() == view.NameHelp {
		globalHelp = globalHelp[:1]
	}

	help := helpbar.New(m.viewport.Width).
		WithGlobalHelp(globalHelp).
		WithViewHelp(m.currentView.ShortHelpItems()).
		View(ui.StatusStyle.Render(m.status.View()))

	body := m.currentView.View()
	if m.confirm.Visible {
		body = lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	if m.commandInput.Visible() {
		// Frame the command bar between the header and the main view,
		// matching the width of full-width view frames.
		cmdFrame := ui.RenderFramedBox("", "", m.commandInput.View(), "", m.viewport.Width+4)

		return lipgloss.JoinVertical(
			lipgloss.Left,
			help,
			cmdFrame,
			body,
			m.renderStackBar(),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		help,
		body,
		m.renderStackBar(),
	)
}
