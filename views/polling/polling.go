package polling

import (
	"sync"
	"time"

	"github.com/PasqualeAiello/io-app/core/primitives/hash"
	applog "github.com/PasqualeAiello/io-app/utils/log"

	tea "github.com/charmbracelet/bubbletea"
)

func l() *applog.AppLogger {
	return applog.L().With("component", "polling")
}

// TickMsg represents a polling tick event
type TickMsg time.Time

// PollInterval is the default polling interval
const PollInterval = time.Second

// Poller re-reads a value on every tick and only emits a message when its
// fingerprint changed.
type Poller[T any] struct {
	mu       sync.Mutex
	last     hash.Fingerprint
	interval time.Duration
	load     func() (T, error)
	build    func(T) tea.Msg
}

// New creates a new Poller for type T
func New[T any](load func() (T, error), build func(T) tea.Msg) *Poller[T] {
	return NewWithInterval(PollInterval, load, build)
}

// NewWithInterval creates a new Poller with a custom interval
func NewWithInterval[T any](interval time.Duration, load func() (T, error), build func(T) tea.Msg) *Poller[T] {
	return &Poller[T]{
		interval: interval,
		load:     load,
		build:    build,
	}
}

// TickCmd returns a command that will trigger a tick after the interval
func (p *Poller[T]) TickCmd() tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Check loads the value and returns the built message when it changed since
// the last check, nil otherwise.
func (p *Poller[T]) Check() tea.Msg {
	data, err := p.load()
	if err != nil {
		l().Errorf("Poller: load failed: %v", err)
		return nil
	}

	fp := hash.Of(data)

	p.mu.Lock()
	defer p.mu.Unlock()
	if fp != "" && fp == p.last {
		return nil
	}
	p.last = fp
	return p.build(data)
}

// CheckCmd wraps Check in a command. It does not schedule the next tick;
// callers pair it with TickCmd.
func (p *Poller[T]) CheckCmd() tea.Cmd {
	return func() tea.Msg {
		return p.Check()
	}
}

// LastFingerprint returns the fingerprint of the last emitted value
func (p *Poller[T]) LastFingerprint() hash.Fingerprint {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
