// Package logstore provides the append-only, in-memory store of completed
// run logs for one coaching session.
package logstore

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/study-coach/internal/types"
)

// Store holds completed run logs in append order. Appends from concurrent
// runs are serialized with a mutex; reads return copies so stored logs are
// never aliased by callers. Logs live only as long as the process.
type Store struct {
	mu   sync.Mutex
	logs []types.RunLog
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Append stores a finalized run log. The log is copied on the way in; the
// pipeline's own value cannot mutate what was stored.
func (s *Store) Append(log types.RunLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, log.Clone())
}

// List returns copies of all stored logs in append order.
func (s *Store) List() []types.RunLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.RunLog, len(s.logs))
	for i, log := range s.logs {
		out[i] = log.Clone()
	}
	return out
}

// Get returns a copy of the log with the given run ID.
func (s *Store) Get(id uuid.UUID) (types.RunLog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, log := range s.logs {
		if log.ID == id {
			return log.Clone(), true
		}
	}
	return types.RunLog{}, false
}

// Len returns the number of stored logs.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.logs)
}

// CountByStatus returns the number of stored logs with the given status.
func (s *Store) CountByStatus(status string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, log := range s.logs {
		if log.Status == status {
			n++
		}
	}
	return n
}

// Clear discards all stored logs.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = nil
}
