package prayer

import (
	"sync"
	"time"
)

// RateLimiter is an in-memory fixed-window limiter keyed by client IP.
// State lives in process memory only, so a restart resets all windows.
type RateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string]*windowEntry

	now func() time.Time // overridable in tests
}

type windowEntry struct {
	start time.Time
	count int
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string]*windowEntry),
		now:    time.Now,
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	entry, ok := l.hits[key]
	if !ok || now.Sub(entry.start) >= l.window {
		l.hits[key] = &windowEntry{start: now, count: 1}
		return true
	}

	entry.count++
	return entry.count <= l.limit
}

// RetryAfter reports how long key must wait before its window resets.
func (l *RateLimiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.hits[key]
	if !ok {
		return 0
	}
	remaining := l.window - l.now().Sub(entry.start)
	if remaining < 0 {
		return 0
	}
	return remaining
}
