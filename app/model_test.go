package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/activation/store"
	"github.com/PasqualeAiello/io-app/config"
	"github.com/PasqualeAiello/io-app/views/commandinput"
	loadingview "github.com/PasqualeAiello/io-app/views/loading"
	"github.com/PasqualeAiello/io-app/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

// chanSender buffers program messages so the test can apply them to the
// model in order, like the Bubble Tea event loop does.
type chanSender struct{ ch chan tea.Msg }

func (s chanSender) Send(msg tea.Msg) { s.ch <- msg }

func newTestModel(t *testing.T, task activation.Task) (*Model, chan tea.Msg) {
	t.Helper()
	m := New(config.Default(), task)
	ch := make(chan tea.Msg, 64)
	m.Attach(chanSender{ch: ch})
	t.Cleanup(m.Shutdown)
	return m, ch
}

// pump applies messages until stop returns true for one of them.
func pump(t *testing.T, m *Model, ch chan tea.Msg, stop func(tea.Msg) bool) {
	t.Helper()
	deadline := time.After(waitTimeout)
	for {
		select {
		case msg := <-ch:
			m.Update(msg)
			if stop(msg) {
				return
			}
		case <-deadline:
			t.Fatalf("timed out pumping messages; current view %q, stack %v", m.currentView.Name(), m.viewStack.Names())
		}
	}
}

func isPop(msg tea.Msg) bool {
	_, ok := msg.(view.HistoryPopMsg)
	return ok
}

func isDone(msg tea.Msg) bool {
	_, ok := msg.(DoneMsg)
	return ok
}

func TestActivationFlowReconcilesHistory(t *testing.T) {
	bonus := &activation.Bonus{Code: "XYZ123", MaxAmount: 50000}
	m, ch := newTestModel(t, func(ctx context.Context) activation.Result {
		return activation.Success(activation.StatusSuccess, bonus)
	})

	m.session.Start(context.Background(), m.task)
	pump(t, m, ch, isPop)

	assert.Equal(t, "activation-completed", m.currentView.Name())
	assert.Equal(t, []string{"home"}, m.viewStack.Names(), "loading entry is popped")
	assert.Equal(t, activation.StatusSuccess, m.store.Snapshot().Result.Status)

	require.Eventually(t, m.session.Continue, waitTimeout, 5*time.Millisecond)
	pump(t, m, ch, isDone)

	assert.Equal(t, "activation-completed", m.currentView.Name())
	assert.Empty(t, m.viewStack.Names())
}

func TestCancelNavigatesBack(t *testing.T) {
	m, ch := newTestModel(t, func(ctx context.Context) activation.Result {
		<-ctx.Done()
		return activation.Failure(ctx.Err())
	})

	m.session.Start(context.Background(), m.task)
	pump(t, m, ch, func(msg tea.Msg) bool {
		nav, ok := msg.(view.NavigateToMsg)
		return ok && nav.ViewName == "activation-loading"
	})
	require.Equal(t, "activation-loading", m.currentView.Name())

	require.Eventually(t, m.session.Cancel, waitTimeout, 5*time.Millisecond)
	pump(t, m, ch, isDone)

	assert.Equal(t, "home", m.currentView.Name())
	assert.Zero(t, m.store.Snapshot().Seq, "a cancelled task publishes nothing")
}

func TestFailureStaysOnLoadingWithError(t *testing.T) {
	m, ch := newTestModel(t, func(ctx context.Context) activation.Result {
		return activation.Failure(errors.New("connection refused"))
	})

	m.session.Start(context.Background(), m.task)
	pump(t, m, ch, func(msg tea.Msg) bool {
		_, ok := msg.(ProgressMsg)
		return ok
	})

	lv, ok := m.currentView.(*loadingview.Model)
	require.True(t, ok)
	assert.True(t, lv.Failed())
	assert.Equal(t, []string{"home"}, m.viewStack.Names())

	m.StartActivation()
	assert.False(t, lv.Failed(), "a retry clears the error dialog")
}

func TestHistoryPopKeepsCurrentView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(view.NavigateToMsg{ViewName: view.NameHelp})
	m.Update(view.NavigateToMsg{ViewName: "activation-exists"})
	require.Equal(t, []string{"home", "help"}, m.viewStack.Names())

	m.Update(view.HistoryPopMsg{Count: 1})
	assert.Equal(t, "activation-exists", m.currentView.Name())
	assert.Equal(t, []string{"home"}, m.viewStack.Names())

	route, ok := m.bridge.CurrentRoute()
	require.True(t, ok)
	assert.Equal(t, activation.RouteExists, route)
}

func TestEscWithoutAttemptGoesBackAndFallsBackHome(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(view.NavigateToMsg{ViewName: "activation-timeout"})
	m.Update(view.HistoryPopMsg{Count: 1})
	require.Zero(t, m.viewStack.Len())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "home", m.currentView.Name(), "an orphaned activation screen returns home")
}

func TestUnknownCommandShowsError(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{':'}})
	require.True(t, m.commandInput.Visible())

	m.Update(commandinput.SubmitMsg{Command: "launch"})
	assert.Equal(t, "unknown command: launch", m.commandInput.Error())
}

func TestQuitAsksForConfirmationWhileActive(t *testing.T) {
	m, ch := newTestModel(t, func(ctx context.Context) activation.Result {
		<-ctx.Done()
		return activation.Failure(ctx.Err())
	})
	m.session.Start(context.Background(), m.task)
	pump(t, m, ch, func(msg tea.Msg) bool {
		_, ok := msg.(view.NavigateToMsg)
		return ok
	})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Nil(t, cmd)
	assert.True(t, m.confirm.Visible)
}

func TestProgressUpdatesHome(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(ProgressMsg{Snapshot: store.Snapshot{Seq: 1, Result: activation.Success(activation.StatusExists, nil)}})
	assert.Contains(t, m.home.View(), "last attempt: EXISTS")
}
