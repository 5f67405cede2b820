package app

import (
	"errors"
	"strings"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/activation/store"
	"github.com/PasqualeAiello/io-app/commands/api"
	"github.com/PasqualeAiello/io-app/registry"
	"github.com/PasqualeAiello/io-app/views/commandinput"
	"github.com/PasqualeAiello/io-app/views/confirmdialog"
	homeview "github.com/PasqualeAiello/io-app/views/home"
	loadingview "github.com/PasqualeAiello/io-app/views/loading"
	outcomeview "github.com/PasqualeAiello/io-app/views/outcome"
	"github.com/PasqualeAiello/io-app/views/polling"
	statusview "github.com/PasqualeAiello/io-app/views/status"
	"github.com/PasqualeAiello/io-app/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	errNothingToCancel   = errors.New("no activation to cancel")
	errNothingToContinue = errors.New("no activation outcome to leave")
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commandinput.SubmitMsg:
		raw := strings.TrimSpace(msg.Command)
		if raw == "" {
			return m, nil
		}

		cmd, parsedArgs, err := api.ParseInput(raw)
		if err != nil {
			m.commandInput.ShowError(err.Error())
			return m, nil
		}

		ctx := registry.Context{App: m}

		return m, cmd.Execute(ctx, parsedArgs)

	case registry.ErrorMsg:
		m.commandInput.ShowError(msg.Err.Error())
		return m, nil

	case view.NavigateToMsg:
		// Use Replace flag to decide whether to replace current view
		if msg.Replace {
			cmd := m.replaceView(msg.ViewName, msg.Payload)
			return m, cmd
		}
		cmd := m.switchToView(msg.ViewName, msg.Payload)
		return m, cmd

	case view.NavigateBackMsg:
		return m, m.goBack()

	case view.HistoryPopMsg:
		m.popHistory(msg.Count)
		return m, nil

	case ProgressMsg:
		m.home.SetSnapshot(msg.Snapshot)
		if lv, ok := m.currentView.(*loadingview.Model); ok {
			lv.SetSnapshot(msg.Snapshot)
		}
		return m, m.status.Refresh()

	case DoneMsg:
		l().Infof("activation attempt ended: %s", msg.Outcome)
		return m, m.status.Refresh()

	case homeview.ActivateMsg, loadingview.RetryMsg:
		return m, m.StartActivation()

	case outcomeview.ContinueMsg:
		m.session.Continue()
		return m, nil

	case confirmdialog.ResultMsg:
		if msg.Confirmed {
			return m, m.shutdownAndQuit()
		}
		return m, nil

	case tea.WindowSizeMsg:
		cmd := m.updateForResize(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.confirm.Visible {
			return m, m.confirm.Update(msg)
		}

		if msg.String() == ":" {
			if !m.commandInput.Visible() {
				cmd := m.commandInput.Show()
				return m, cmd
			}
			// If already visible, consume it and do nothing
			return m, nil
		}

		// If command input is visible, forward all keys to it exclusively
		if m.commandInput.Visible() {
			cmd := m.commandInput.Update(msg)
			return m, cmd
		}

		return m.handleKey(msg)

	case statusview.Msg, statusview.SpinnerTickMsg, polling.TickMsg:
		return m, m.status.Update(msg)

	default:
		cmd := m.delegateToCurrentView(msg)
		return m, cmd
	}
}

func (m *Model) delegateToCurrentView(msg tea.Msg) tea.Cmd {
	cmd := m.currentView.Update(msg)

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)

	return tea.Batch(cmd, vpCmd)
}

func (m *Model) updateForResize(msg tea.WindowSizeMsg) tea.Cmd {
	// Store terminal dimensions
	m.terminalWidth = msg.Width
	m.terminalHeight = msg.Height

	// Leave room for the status panel, help columns and stack bar
	m.viewport.Width = msg.Width - 4
	m.viewport.Height = msg.Height - 10

	return handleViewResize(m.currentView, m.viewport.Width, m.viewport.Height)
}

func handleViewResize(v view.View, width, height int) tea.Cmd {
	return v.Update(tea.WindowSizeMsg{Width: width, Height: height})
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, m.quit()

	case "esc", "q":
		// Leaving an activation screen cancels the attempt; the
		// coordinator then navigates back itself.
		if isActivationScreen(m.currentView.Name()) && m.session.Cancel() {
			return m, nil
		}
		return m, m.goBack()

	case "?":
		if m.currentView.Name() != view.NameHelp {
			return m, m.switchToView(view.NameHelp, nil)
		}
		return m, nil
	}

	cmd := m.currentView.Update(msg)
	return m, cmd
}

// StartActivation launches a new attempt. Session.Start waits for the
// previous attempt, so it runs off the update loop.
func (m *Model) StartActivation() tea.Cmd {
	if lv, ok := m.currentView.(*loadingview.Model); ok {
		lv.SetSnapshot(store.Snapshot{Result: activation.InProgress()})
	}
	ctx, task := m.ctx, m.task
	return tea.Batch(func() tea.Msg {
		m.session.Start(ctx, task)
		return nil
	}, m.status.Refresh())
}

func (m *Model) CancelActivation() tea.Cmd {
	return func() tea.Msg {
		if !m.session.Cancel() {
			return registry.ErrorMsg{Err: errNothingToCancel}
		}
		return nil
	}
}

func (m *Model) ContinueActivation() tea.Cmd {
	return func() tea.Msg {
		if !m.session.Continue() {
			return registry.ErrorMsg{Err: errNothingToContinue}
		}
		return nil
	}
}

func (m *Model) ActivationRunning() bool {
	return m.session.Active()
}

func (m *Model) RefreshStatus() tea.Cmd {
	return m.status.Refresh()
}

var _ registry.Controller = (*Model)(nil)
