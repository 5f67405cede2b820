package app

import (
	"sync"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/activation/store"
	"github.com/PasqualeAiello/io-app/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

// ProgressMsg carries every activation result published by the coordinator.
type ProgressMsg struct {
	Snapshot store.Snapshot
}

// DoneMsg reports the end of an activation attempt.
type DoneMsg struct {
	Outcome activation.Outcome
}

// routeTracker mirrors the model's navigation state for goroutines that
// must not touch the model directly.
type routeTracker struct {
	mu      sync.RWMutex
	current string
	history []string
}

func (t *routeTracker) set(current string, history []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = current
	t.history = history
}

func (t *routeTracker) route() (activation.Route, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.current == "" {
		return "", false
	}
	return activation.Route(t.current), true
}

func (t *routeTracker) trail() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append(append([]string{}, t.history...), t.current)
}

// Bridge turns coordinator effects into Bubble Tea messages. The model
// applies them in the order they were sent.
type Bridge struct {
	sender Sender
	routes *routeTracker
	store  *store.Store
}

func newBridge(st *store.Store, routes *routeTracker) *Bridge {
	b := &Bridge{store: st, routes: routes}
	st.Subscribe(func(s store.Snapshot) {
		b.send(ProgressMsg{Snapshot: s})
	})
	return b
}

func (b *Bridge) send(msg tea.Msg) {
	if b.sender == nil {
		l().Warnf("dropping %T: no program attached", msg)
		return
	}
	b.sender.Send(msg)
}

func (b *Bridge) CurrentRoute() (activation.Route, bool) {
	return b.routes.route()
}

func (b *Bridge) NavigateTo(route activation.Route) {
	b.send(view.NavigateToMsg{ViewName: string(route)})
}

func (b *Bridge) Back() {
	b.send(view.NavigateBackMsg{})
}

func (b *Bridge) PopHistory(n int) {
	b.send(view.HistoryPopMsg{Count: n})
}

func (b *Bridge) Publish(r activation.Result) {
	b.store.Publish(r)
}
