package activation

import (
	"context"
	"errors"
	"sync/atomic"

	applog "github.com/PasqualeAiello/io-app/utils/log"
)

func l() *applog.AppLogger {
	return applog.L().With("activation", "coordinator")
}

// Outcome tells how a cancellable run ended.
type Outcome int

const (
	// OutcomeCompleted: the run reached the restart event.
	OutcomeCompleted Outcome = iota
	// OutcomeCancelled: the cancel signal won the race.
	OutcomeCancelled
	// OutcomeAborted: the parent context ended first.
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Coordinator drives one activation attempt and keeps the navigation
// history consistent with the screens the user actually saw.
type Coordinator struct {
	nav     Navigator
	pub     Publisher
	restart *Signal
	cancel  *Signal

	// settled is set once the task resolved; from then on the run goes
	// straight to waiting for the restart event.
	settled atomic.Bool
}

func NewCoordinator(nav Navigator, pub Publisher, restart, cancel *Signal) *Coordinator {
	return &Coordinator{
		nav:     nav,
		pub:     pub,
		restart: restart,
		cancel:  cancel,
	}
}

// errCancelled reports that the cancel event was taken at a suspension point.
var errCancelled = errors.New("activation cancelled")

// Run executes the activation workflow. It returns nil once the restart
// event was handled, or ctx's error if ctx ended at a suspension point.
// Without a restart event it never returns on its own.
func (c *Coordinator) Run(ctx context.Context, task Task) error {
	return c.run(ctx, task, nil)
}

// RunCancellable races Run against the cancel signal. When the cancel
// signal wins, the run is abandoned and a back navigation is emitted.
func (c *Coordinator) RunCancellable(ctx context.Context, task Task) Outcome {
	err := c.run(ctx, task, c.cancel.C())
	switch {
	case err == nil:
		return OutcomeCompleted
	case errors.Is(err, errCancelled):
		l().Infof("activation cancelled")
		c.nav.Back()
		return OutcomeCancelled
	default:
		return OutcomeAborted
	}
}

// run waits on cancel at every suspension point, so taking the cancel event
// and accepting a task result or a restart are one decision. A nil cancel
// channel never fires.
func (c *Coordinator) run(ctx context.Context, task Task, cancel <-chan struct{}) error {
	if current, ok := c.nav.CurrentRoute(); ok && !IsLoading(current) {
		c.nav.NavigateTo(RouteLoading)
	}

	result, err := c.await(ctx, task, cancel)
	if err != nil {
		return err
	}
	c.settled.Store(true)
	defer c.settled.Store(false)

	l().Debugf("activation returned %s", result)
	c.pub.Publish(result)

	next := NextRoute(result)
	if next != RouteLoading {
		// leave loading and drop it from the back history
		c.nav.NavigateTo(next)
		c.nav.PopHistory(1)
	}

	// TODO: hand off to the post-activation flow once it exists; until then
	// the restart event only clears the terminal screen from history.
	select {
	case <-c.restart.C():
	case <-cancel:
		return errCancelled
	case <-ctx.Done():
		return ctx.Err()
	}
	c.nav.PopHistory(1)
	return nil
}

// Settled reports whether the running attempt is past its activation task.
func (c *Coordinator) Settled() bool {
	return c.settled.Load()
}

func (c *Coordinator) await(ctx context.Context, task Task, cancel <-chan struct{}) (Result, error) {
	taskCtx, stop := context.WithCancel(ctx)
	defer stop()

	out := make(chan Result, 1)
	go func() {
		out <- task(taskCtx)
	}()

	select {
	case r := <-out:
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		return r, nil
	case <-cancel:
		// the task is abandoned; its result is discarded
		return Result{}, errCancelled
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
