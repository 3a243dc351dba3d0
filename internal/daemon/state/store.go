// Package state holds the snapshot shared between the poller and the UI loop,
// and the signal used to wake the UI when it changes.
package state

import (
	"sync"

	"github.com/diskspace-io/diskspace/internal/models"
)

// Store is a single mutex-guarded slot holding the latest snapshot. The poller
// is the only writer; UI loops read.
type Store struct {
	mu   sync.Mutex
	snap models.Snapshot
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new snapshot wholesale.
func (s *Store) Replace(snap models.Snapshot) {
	snap = snap.Clone()
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Read returns a copy of the latest snapshot.
func (s *Store) Read() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}
