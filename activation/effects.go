package activation

import "context"

// Task performs the activation network call. Faults must be returned as a
// Failure result.
type Task func(ctx context.Context) Result

// Navigator is the navigation capability the coordinator drives. The
// history itself belongs to the implementation.
type Navigator interface {
	// CurrentRoute reports the displayed screen; false when unknown.
	CurrentRoute() (Route, bool)
	NavigateTo(route Route)
	Back()
	PopHistory(n int)
}

// Publisher receives every activation result.
type Publisher interface {
	Publish(r Result)
}

type PublisherFunc func(r Result)

func (f PublisherFunc) Publish(r Result) { f(r) }
