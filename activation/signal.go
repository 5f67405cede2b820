package activation

import "context"

// Signal is an event a coordinator can wait on. An event fired while nobody
// is waiting is dropped.
type Signal struct {
	ch chan struct{}
}

func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// C returns the channel a waiter receives the event on.
func (s *Signal) C() <-chan struct{} {
	return s.ch
}

// Fire hands the event to a current waiter and reports whether one took it.
func (s *Signal) Fire() bool {
	select {
	case s.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// Deliver blocks until a waiter takes the event or ctx ends.
func (s *Signal) Deliver(ctx context.Context) error {
	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
