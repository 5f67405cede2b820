// Package headless drives an activation from a plain terminal, without the
// full-screen UI.
package headless

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/i18n"
	"github.com/PasqualeAiello/io-app/ui"

	"github.com/briandowns/spinner"
)

// StartRoute is the screen the console reports before any navigation.
const StartRoute activation.Route = "home"

// Console is an activation.Navigator and activation.Publisher that prints
// every transition and keeps its own back history.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	tr      *i18n.Translator
	current activation.Route
	history []activation.Route
	last    *activation.Result
	spin    *spinner.Spinner
}

type Option func(*Console)

// WithoutSpinner disables the progress spinner, e.g. when out is not a
// terminal.
func WithoutSpinner() Option {
	return func(c *Console) { c.spin = nil }
}

func New(out io.Writer, tr *i18n.Translator, opts ...Option) *Console {
	c := &Console{
		out:     out,
		tr:      tr,
		current: StartRoute,
		spin:    spinner.New(spinner.CharSets[ui.DefaultSpinnerCharsetIndex], 100*time.Millisecond, spinner.WithWriter(out)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) CurrentRoute() (activation.Route, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, true
}

func (c *Console) NavigateTo(route activation.Route) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history, c.current)
	c.current = route
	c.render()
}

func (c *Console) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopSpinner()
	if n := len(c.history); n > 0 {
		c.current = c.history[n-1]
		c.history = c.history[:n-1]
	} else {
		c.current = StartRoute
	}
	fmt.Fprintf(c.out, "← %s\n", c.current)
}

func (c *Console) PopHistory(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n > len(c.history) {
		n = len(c.history)
	}
	c.history = c.history[:len(c.history)-n]
}

func (c *Console) Publish(r activation.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.last = &r
	if r.Kind == activation.KindFailure {
		c.stopSpinner()
		fmt.Fprintln(c.out, c.tr.T(i18n.ErrorBody, r.Err))
	}
}

// History returns the back history, oldest first.
func (c *Console) History() []activation.Route {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]activation.Route(nil), c.history...)
}

// Close stops the spinner if it is still running.
func (c *Console) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopSpinner()
}

func (c *Console) render() {
	if activation.IsLoading(c.current) {
		if c.spin != nil {
			c.spin.Suffix = " " + c.tr.T(i18n.LoadingBody)
			c.spin.Start()
			return
		}
		fmt.Fprintln(c.out, c.tr.T(i18n.LoadingBody))
		return
	}

	c.stopSpinner()
	title, body := c.texts()
	fmt.Fprintf(c.out, "%s\n%s\n(%s)\n", title, body, c.tr.T(i18n.ContinueHint))
}

func (c *Console) texts() (string, string) {
	switch c.current {
	case activation.RouteCompleted:
		if c.last != nil && c.last.Bonus != nil {
			b := c.last.Bonus
			return c.tr.T(i18n.CompletedTitle), c.tr.T(i18n.CompletedBody, b.Code, c.tr.Amount(b.MaxAmount))
		}
		return c.tr.T(i18n.CompletedTitle), ""
	case activation.RouteTimeout:
		return c.tr.T(i18n.TimeoutTitle), c.tr.T(i18n.TimeoutBody)
	case activation.RouteEligibilityExpired:
		return c.tr.T(i18n.ExpiredTitle), c.tr.T(i18n.ExpiredBody)
	case activation.RouteExists:
		return c.tr.T(i18n.ExistsTitle), c.tr.T(i18n.ExistsBody)
	}
	return string(c.current), ""
}

func (c *Console) stopSpinner() {
	if c.spin != nil && c.spin.Active() {
		c.spin.Stop()
	}
}
