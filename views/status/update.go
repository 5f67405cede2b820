package statusview

import (
	"github.com/PasqualeAiello/io-app/views/polling"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Msg:
		if msg.Info.Seq != m.info.Seq {
			l().Debugf("activation status %s (seq %d)", msg.Info.Status, msg.Info.Seq)
		}
		m.info = msg.Info
		return nil

	case polling.TickMsg:
		return tea.Batch(m.poller.CheckCmd(), m.poller.TickCmd())

	case SpinnerTickMsg:
		m.spinner++
		return m.spinnerTickCmd()
	}

	return nil
}
