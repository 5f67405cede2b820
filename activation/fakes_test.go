package activation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

const waitTimeout = 2 * time.Second

// recorder is a Navigator and Publisher that logs every effect in order.
type recorder struct {
	mu      sync.Mutex
	current Route
	known   bool
	log     []string
	effects chan string
}

func newRecorder(current Route) *recorder {
	return &recorder{
		current: current,
		known:   current != "",
		effects: make(chan string, 64),
	}
}

func (r *recorder) CurrentRoute() (Route, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.known
}

func (r *recorder) NavigateTo(route Route) {
	r.mu.Lock()
	r.current = route
	r.known = true
	r.mu.Unlock()
	r.emit("navigate:" + string(route))
}

func (r *recorder) Back()            { r.emit("back") }
func (r *recorder) PopHistory(n int) { r.emit(fmt.Sprintf("pop:%d", n)) }
func (r *recorder) Publish(res Result) {
	r.emit("publish:" + res.String())
}

func (r *recorder) emit(effect string) {
	r.mu.Lock()
	r.log = append(r.log, effect)
	r.mu.Unlock()
	r.effects <- effect
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.log))
	copy(out, r.log)
	return out
}

// expect consumes the next effects and fails unless they match in order.
func (r *recorder) expect(t *testing.T, want ...string) {
	t.Helper()
	for i, w := range want {
		select {
		case got := <-r.effects:
			if got != w {
				t.Fatalf("effect %d: expected %q, got %q (log %v)", i, w, got, r.all())
			}
		case <-time.After(waitTimeout):
			t.Fatalf("timed out waiting for effect %q (log %v)", w, r.all())
		}
	}
}

// expectQuiet fails if any effect shows up within d.
func (r *recorder) expectQuiet(t *testing.T, d time.Duration) {
	t.Helper()
	select {
	case got := <-r.effects:
		t.Fatalf("unexpected effect %q (log %v)", got, r.all())
	case <-time.After(d):
	}
}

func resolved(res Result) Task {
	return func(context.Context) Result { return res }
}

// gated returns a task that resolves with res once release is closed, or
// with a failure when its context ends first.
func gated(res Result, release <-chan struct{}) Task {
	return func(ctx context.Context) Result {
		select {
		case <-release:
			return res
		case <-ctx.Done():
			return Failure(ctx.Err())
		}
	}
}

func deliver(t *testing.T, s *Signal) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	if err := s.Deliver(ctx); err != nil {
		t.Fatalf("signal was not taken: %v", err)
	}
}
