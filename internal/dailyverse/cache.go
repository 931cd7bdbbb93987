package dailyverse

import (
	"context"
	"sync"
)

// Store caches one verse per (scope, date). Scope is either a user scope or
// the shared anonymous scope; date is a calendar day in YYYY-MM-DD form, so
// entries expire naturally when the day rolls over. Prune drops entries for
// past days.
type Store interface {
	Get(ctx context.Context, scope, date string) (*DailyVerse, error)
	Set(ctx context.Context, scope, date string, v DailyVerse) error
	Prune(ctx context.Context, before string) error
}

// ScopeAnonymous is shared by all callers without an account.
const ScopeAnonymous = "anonymous"

// MemoryStore is the default Store when no database row should be touched,
// and the one unit tests inject.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]DailyVerse
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]DailyVerse)}
}

func (s *MemoryStore) key(scope, date string) string {
	return scope + "|" + date
}

func (s *MemoryStore) Get(ctx context.Context, scope, date string) (*DailyVerse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[s.key(scope, date)]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *MemoryStore) Set(ctx context.Context, scope, date string, v DailyVerse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[s.key(scope, date)] = v
	return nil
}

func (s *MemoryStore) Prune(ctx context.Context, before string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		// key is "<scope>|<YYYY-MM-DD>"; dates compare lexically.
		if i := len(key) - len(before); i > 0 && key[i:] < before {
			delete(s.entries, key)
		}
	}
	return nil
}
