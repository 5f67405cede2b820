// Package store holds the last published activation result so that views
// and the status bar can observe the attempt in flight.
package store

import (
	"sync"
	"time"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/core/primitives/hash"
)

// Snapshot is the state after one publication.
type Snapshot struct {
	Result      activation.Result
	Seq         uint64
	Fingerprint hash.Fingerprint
	UpdatedAt   time.Time
	// Changed is false when the result equals the previous publication.
	Changed bool
}

// Store is an activation.Publisher that keeps the latest result.
type Store struct {
	mu          sync.RWMutex
	snap        Snapshot
	subscribers []func(Snapshot)
	now         func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

// Publish records r unconditionally and notifies subscribers.
func (s *Store) Publish(r activation.Result) {
	s.mu.Lock()
	fp := hash.Of(r)
	s.snap = Snapshot{
		Result:      r,
		Seq:         s.snap.Seq + 1,
		Fingerprint: fp,
		UpdatedAt:   s.now(),
		Changed:     s.snap.Seq == 0 || fp == "" || fp != s.snap.Fingerprint,
	}
	snap := s.snap
	subs := make([]func(Snapshot), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Snapshot returns the latest state; Seq is zero before the first publish.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Subscribe registers fn for every later publication.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}
