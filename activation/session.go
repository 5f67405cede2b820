package activation

import (
	"context"
	"sync"
)

type attempt struct {
	stop    context.CancelFunc
	done    chan struct{}
	outcome Outcome
}

// Session runs activation attempts one at a time over a shared navigator.
type Session struct {
	coord   *Coordinator
	restart *Signal
	cancel  *Signal

	starting sync.Mutex
	mu       sync.Mutex
	current  *attempt

	// OnDone, when set, is called with the outcome of every attempt.
	OnDone func(Outcome)
}

func NewSession(nav Navigator, pub Publisher) *Session {
	restart := NewSignal()
	cancel := NewSignal()
	return &Session{
		coord:   NewCoordinator(nav, pub, restart, cancel),
		restart: restart,
		cancel:  cancel,
	}
}

// Start launches a new attempt. An attempt whose task already resolved
// receives the restart event first; an attempt still waiting on its task is
// aborted without back navigation.
func (s *Session) Start(ctx context.Context, task Task) {
	s.starting.Lock()
	defer s.starting.Unlock()

	s.mu.Lock()
	prev := s.current
	s.mu.Unlock()

	if prev != nil && !prev.finished() {
		if s.coord.Settled() {
			select {
			case s.restart.ch <- struct{}{}:
			case <-prev.done:
			}
		} else {
			l().Infof("aborting in-flight activation attempt")
			prev.stop()
		}
		<-prev.done
	}

	runCtx, stop := context.WithCancel(ctx)
	a := &attempt{stop: stop, done: make(chan struct{})}
	s.mu.Lock()
	s.current = a
	s.mu.Unlock()

	go func() {
		defer stop()
		a.outcome = s.coord.RunCancellable(runCtx, task)
		l().Infof("activation attempt %s", a.outcome)
		close(a.done)
		if s.OnDone != nil {
			s.OnDone(a.outcome)
		}
	}()
}

// Cancel fires the cancel event; false when no attempt was listening.
func (s *Session) Cancel() bool {
	return s.cancel.Fire()
}

// CancelContext delivers the cancel event, waiting until the running
// attempt takes it or ctx ends.
func (s *Session) CancelContext(ctx context.Context) error {
	return s.cancel.Deliver(ctx)
}

// Continue fires the restart event without starting a new attempt.
func (s *Session) Continue() bool {
	return s.restart.Fire()
}

// Active reports whether an attempt is still running.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && !s.current.finished()
}

// Wait blocks until the current attempt ends and returns its outcome.
func (s *Session) Wait(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	a := s.current
	s.mu.Unlock()
	if a == nil {
		return OutcomeCompleted, nil
	}
	select {
	case <-a.done:
		return a.outcome, nil
	case <-ctx.Done():
		return OutcomeAborted, ctx.Err()
	}
}

// Stop aborts the current attempt, if any, and waits for it.
func (s *Session) Stop() {
	s.mu.Lock()
	a := s.current
	s.mu.Unlock()
	if a == nil {
		return
	}
	a.stop()
	<-a.done
}

func (a *attempt) finished() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}
