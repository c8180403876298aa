package repository

import (
	"context"
	"sync"

	"github.com/irosadie/fifa-ranking/internal/domain/model"
	"github.com/irosadie/fifa-ranking/pkg/metrics"
)

// MemStore implements Store with a mutex-guarded in-memory state.
type MemStore struct {
	mu        sync.RWMutex
	cycle     uint64
	snapshots []model.Snapshot
	history   model.History
}

// NewMemStore builds an empty store.
func NewMemStore() *MemStore {
	return &MemStore{history: model.History{}}
}

// ReplaceCycle installs cycle's results unless a newer cycle won the
// race. Cycle ids are issued monotonically by the orchestrator, so a
// smaller-or-equal id means this cycle was superseded mid-flight.
func (s *MemStore) ReplaceCycle(ctx context.Context, cycle uint64, snapshots []model.Snapshot, history model.History) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cycle <= s.cycle {
		metrics.RecordStaleCycleDrop()
		return false
	}
	s.cycle = cycle
	s.snapshots = snapshots
	s.history = history
	metrics.UpdateTrackedCountries(len(history))
	return true
}

// CurrentCycle returns the installed cycle id.
func (s *MemStore) CurrentCycle(ctx context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycle
}

// Snapshots returns the installed snapshots.
func (s *MemStore) Snapshots(ctx context.Context) []model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshots
}

// History returns the installed history map.
func (s *MemStore) History(ctx context.Context) model.History {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history
}

// Count returns the number of countries installed.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}
