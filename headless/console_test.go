package headless

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const waitTimeout = 2 * time.Second

// syncBuffer guards the output shared by the coordinator goroutine and the
// test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newConsole() (*Console, *syncBuffer) {
	out := &syncBuffer{}
	return New(out, i18n.New("en"), WithoutSpinner()), out
}

func TestConsoleHistory(t *testing.T) {
	c, out := newConsole()

	route, ok := c.CurrentRoute()
	require.True(t, ok)
	assert.Equal(t, StartRoute, route)

	c.NavigateTo(activation.RouteLoading)
	c.Publish(activation.Success(activation.StatusExists, nil))
	c.NavigateTo(activation.RouteExists)
	c.PopHistory(1)
	assert.Equal(t, []activation.Route{StartRoute}, c.History())

	c.PopHistory(5)
	assert.Empty(t, c.History())

	c.Back()
	route, _ = c.CurrentRoute()
	assert.Equal(t, StartRoute, route)

	text := out.String()
	assert.Contains(t, text, "Activating your bonus")
	assert.Contains(t, text, "Bonus already active")
	assert.Contains(t, text, "← home")
}

func TestConsoleCompletedShowsBonus(t *testing.T) {
	c, out := newConsole()
	c.NavigateTo(activation.RouteLoading)
	c.Publish(activation.Success(activation.StatusSuccess, &activation.Bonus{Code: "Q1W2E3", MaxAmount: 15000}))
	c.NavigateTo(activation.RouteCompleted)

	assert.Contains(t, out.String(), "Code Q1W2E3, worth up to € 150.00")
}

func TestConsolePrintsFailures(t *testing.T) {
	c, out := newConsole()
	c.Publish(activation.Failure(errors.New("service unavailable")))
	assert.Contains(t, out.String(), "Error: service unavailable")
}

// chanReader yields one line per value sent on its channel.
type chanReader chan string

func (r chanReader) Read(p []byte) (int, error) {
	line, ok := <-r
	if !ok {
		return 0, io.EOF
	}
	return copy(p, line), nil
}

func TestRunCompletesOnEnter(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, out := newConsole()
	in := make(chanReader)

	task := func(ctx context.Context) activation.Result {
		return activation.Success(activation.StatusTimeout, nil)
	}

	done := make(chan activation.Outcome, 1)
	go func() {
		o, err := Run(context.Background(), c, task, in, nil)
		assert.NoError(t, err)
		done <- o
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Still working on it")
	}, waitTimeout, 5*time.Millisecond)

	// Enter is only taken once the attempt waits for it, so keep pressing.
	var outcome activation.Outcome
	require.Eventually(t, func() bool {
		select {
		case in <- "\n":
		default:
		}
		select {
		case outcome = <-done:
			return true
		default:
			return false
		}
	}, waitTimeout, 5*time.Millisecond)
	close(in)

	assert.Equal(t, activation.OutcomeCompleted, outcome)
	assert.Empty(t, c.History(), "both pops were applied")
}

func TestRunCancelsOnInterrupt(t *testing.T) {
	c, out := newConsole()
	interrupts := make(chan os.Signal, 1)

	task := func(ctx context.Context) activation.Result {
		<-ctx.Done()
		return activation.Failure(ctx.Err())
	}

	done := make(chan activation.Outcome, 1)
	go func() {
		o, _ := Run(context.Background(), c, task, strings.NewReader(""), interrupts)
		done <- o
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Activating your bonus")
	}, waitTimeout, 5*time.Millisecond)
	interrupts <- os.Interrupt

	select {
	case o := <-done:
		assert.Equal(t, activation.OutcomeCancelled, o)
	case <-time.After(waitTimeout):
		t.Fatal("run did not stop")
	}
	assert.Contains(t, out.String(), "← home")
}

func TestRunAbortsWithContext(t *testing.T) {
	c, _ := newConsole()
	ctx, cancel := context.WithCancel(context.Background())

	task := func(ctx context.Context) activation.Result {
		<-ctx.Done()
		return activation.Failure(ctx.Err())
	}

	done := make(chan error, 1)
	go func() {
		_, err := Run(ctx, c, task, strings.NewReader(""), nil)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(waitTimeout):
		t.Fatal("run did not stop")
	}
}
