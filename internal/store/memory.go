package store

import (
	"context"
	"sync"

	"github.com/soundings-io/soundings/internal/state"
)

// MemoryStore keeps snapshots in process memory. Safe for concurrent use.
// Snapshots are cloned on the way in and out so callers never share maps.
type MemoryStore struct {
	mu         sync.RWMutex
	latest     map[string]*state.Snapshot
	history    map[string][]*state.Snapshot
	maxHistory int
}

// NewMemoryStore creates an empty store retaining up to maxHistory
// snapshots per user (MaxHistoryPerUser when <= 0).
func NewMemoryStore(maxHistory int) *MemoryStore {
	if maxHistory <= 0 {
		maxHistory = MaxHistoryPerUser
	}
	return &MemoryStore{
		latest:     make(map[string]*state.Snapshot),
		history:    make(map[string][]*state.Snapshot),
		maxHistory: maxHistory,
	}
}

func (s *MemoryStore) UpsertLatest(_ context.Context, snapshot *state.Snapshot) error {
	snap := snapshot.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[snap.UserID] = snap
	h := append(s.history[snap.UserID], snap)
	if len(h) > s.maxHistory {
		h = h[len(h)-s.maxHistory:]
	}
	s.history[snap.UserID] = h
	return nil
}

func (s *MemoryStore) GetLatest(_ context.Context, userID string) (*state.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest[userID].Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.latest, userID)
	delete(s.history, userID)
	return nil
}

func (s *MemoryStore) History(_ context.Context, userID string, limit int) ([]*state.Snapshot, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	h := s.history[userID]
	out := make([]*state.Snapshot, 0, limit)
	for i := len(h) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, h[i].Clone())
	}
	return out, nil
}

// Len returns the number of users with stored state.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.latest)
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
