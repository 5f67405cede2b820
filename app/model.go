package app

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/activation/store"
	"github.com/PasqualeAiello/io-app/config"
	"github.com/PasqualeAiello/io-app/i18n"
	"github.com/PasqualeAiello/io-app/registry"
	"github.com/PasqualeAiello/io-app/ui"
	"github.com/PasqualeAiello/io-app/views/commandinput"
	"github.com/PasqualeAiello/io-app/views/confirmdialog"
	homeview "github.com/PasqualeAiello/io-app/views/home"
	statusview "github.com/PasqualeAiello/io-app/views/status"
	"github.com/PasqualeAiello/io-app/views/view"
	"github.com/PasqualeAiello/io-app/views/viewstack"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model holds app state
type Model struct {
	viewport       viewport.Model
	terminalWidth  int
	terminalHeight int

	status *statusview.Model

	views       map[string]view.Factory
	home        *homeview.Model
	currentView view.View
	viewStack   viewstack.Stack
	routes      *routeTracker

	commandInput *commandinput.Model
	confirm      *confirmdialog.Model

	tr      *i18n.Translator
	store   *store.Store
	bridge  *Bridge
	session *activation.Session
	task    activation.Task
	ctx     context.Context
	stop    context.CancelFunc
}

// New builds the root model. Attach must be called with the running
// program before any activation is started.
func New(cfg *config.Config, task activation.Task) *Model {
	vp := viewport.New(80, 20)
	vp.YPosition = 5

	tr := i18n.New(cfg.Locale)
	st := store.New()
	routes := &routeTracker{}
	bridge := newBridge(st, routes)
	ctx, stop := context.WithCancel(context.Background())

	m := &Model{
		viewport:     vp,
		views:        map[string]view.Factory{},
		home:         homeview.New(vp.Width, vp.Height, tr),
		routes:       routes,
		commandInput: commandinput.New(registry.Suggest),
		confirm:      confirmdialog.New(),
		tr:           tr,
		store:        st,
		bridge:       bridge,
		session:      activation.NewSession(bridge, bridge),
		task:         task,
		ctx:          ctx,
		stop:         stop,
	}
	m.session.OnDone = func(o activation.Outcome) {
		bridge.send(DoneMsg{Outcome: o})
	}
	m.status = statusview.New(Version, m.statusInfo(backendHost(cfg.API.BaseURL)))
	m.currentView = m.home
	m.registerViews()
	m.syncRoutes()
	return m
}

// Attach connects coordinator effects to the running program.
func (m *Model) Attach(s Sender) {
	m.bridge.sender = s
}

// Shutdown aborts a running attempt and waits for it to leave.
func (m *Model) Shutdown() {
	m.stop()
	m.session.Stop()
}

// Init  will be automatically called by Bubble Tea if the model implements the Model interface
// and is passed into the tea.NewProgram function.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.status.Init(), m.currentView.Init(), loadSnapshot(m.store))
}

// loadSnapshot replays the last published result, if any, to the views.
func loadSnapshot(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		snap := st.Snapshot()
		if snap.Seq == 0 {
			return nil
		}
		return ProgressMsg{Snapshot: snap}
	}
}

func (m *Model) statusInfo(backend string) statusview.Source {
	return func() (statusview.Info, error) {
		snap := m.store.Snapshot()
		trail := m.routes.trail()
		return statusview.Info{
			Backend: backend,
			Locale:  m.tr.Tag().String(),
			Active:  m.session.Active(),
			Kind:    snap.Result.Kind,
			Status:  snap.Result.Status,
			Err:     snap.Result.Err,
			Seq:     snap.Seq,
			Updated: snap.UpdatedAt,
			History: trail,
		}, nil
	}
}

func backendHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}

// syncRoutes publishes the navigation state to the bridge.
func (m *Model) syncRoutes() {
	m.routes.set(m.currentView.Name(), m.viewStack.Names())
}

func (m *Model) switchToView(name string, data any) tea.Cmd {
	factory, ok := m.views[name]
	if !ok {
		l().Warnf("no view registered for %q", name)
		return nil
	}

	// Exit hook for current view
	exitCmd := m.currentView.OnExit()

	newView, loadCmd := factory(m.viewport.Width, m.viewport.Height, data)
	resizeCmd := handleViewResize(newView, m.viewport.Width, m.viewport.Height)

	// Push current view onto stack
	m.viewStack.Push(m.currentView)
	m.currentView = newView
	m.syncRoutes()

	// Enter hook for new view
	enterCmd := newView.OnEnter()

	return tea.Batch(exitCmd, resizeCmd, loadCmd, enterCmd)
}

func (m *Model) replaceView(name string, data any) tea.Cmd {
	factory, ok := m.views[name]
	if !ok {
		l().Warnf("no view registered for %q", name)
		return nil
	}

	// Run exit hook on current view
	exitCmd := m.currentView.OnExit()

	newView, loadCmd := factory(m.viewport.Width, m.viewport.Height, data)
	resizeCmd := handleViewResize(newView, m.viewport.Width, m.viewport.Height)

	m.currentView = newView
	m.viewStack.Reset()
	m.syncRoutes()

	// Run enter hook on new view
	enterCmd := newView.OnEnter()

	return tea.Batch(exitCmd, resizeCmd, loadCmd, enterCmd)
}

func (m *Model) goBack() tea.Cmd {
	if m.viewStack.Len() == 0 {
		// An activation screen left without history falls back to home.
		if m.currentView.Name() != view.NameHome {
			return m.replaceView(view.NameHome, nil)
		}
		return m.quit()
	}

	// The view being left
	exitCmd := m.currentView.OnExit()

	// Pop the previous view
	m.currentView = m.viewStack.Pop()
	m.syncRoutes()

	// The view you are returning to
	enterCmd := m.currentView.OnEnter()

	// Optionally notify the view about terminal size again
	resizeCmd := handleViewResize(m.currentView, m.viewport.Width, m.viewport.Height)

	// Execute all lifecycle commands
	return tea.Batch(exitCmd, enterCmd, resizeCmd)
}

// popHistory removes n entries below the current view.
func (m *Model) popHistory(n int) {
	dropped := m.viewStack.Drop(n)
	if dropped < n {
		l().Debugf("history pop of %d removed only %d entries", n, dropped)
	}
	m.syncRoutes()
}

func (m *Model) quit() tea.Cmd {
	if m.session.Active() && !m.confirm.Visible {
		m.confirm.Show("An activation is in progress. Quit anyway?")
		return nil
	}
	return m.shutdownAndQuit()
}

func (m *Model) shutdownAndQuit() tea.Cmd {
	exitCmd := m.currentView.OnExit()
	return tea.Sequence(exitCmd, func() tea.Msg {
		m.Shutdown()
		return tea.QuitMsg{}
	})
}

func (m *Model) renderStackBar() string {
	// Combine stack and current view
	stack := append(m.viewStack.Views(), m.currentView)

	var parts []string
	for i, v := range stack {
		if i > 0 {
			parts = append(parts, lipgloss.NewStyle().Faint(true).Render(" → "))
		}
		style := ui.Rainbow[i%len(ui.Rainbow)]
		parts = append(parts, style.Render(fmt.Sprintf(" %s ", v.Name())))
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
