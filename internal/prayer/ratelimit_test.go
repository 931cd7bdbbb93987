package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(5, 60*time.Second)
	limiter.now = func() time.Time { return now }

	for i := 1; i <= 5; i++ {
		assert.True(t, limiter.Allow("1.2.3.4"), "request %d should pass", i)
	}
	assert.False(t, limiter.Allow("1.2.3.4"), "6th request should be rejected")

	// Other clients are unaffected.
	assert.True(t, limiter.Allow("5.6.7.8"))
}

func TestRateLimiterWindowReset(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(5, 60*time.Second)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 6; i++ {
		limiter.Allow("1.2.3.4")
	}
	assert.False(t, limiter.Allow("1.2.3.4"))

	now = now.Add(61 * time.Second)
	assert.True(t, limiter.Allow("1.2.3.4"), "window should reset after 60s")
}

func TestRateLimiterRetryAfter(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(5, 60*time.Second)
	limiter.now = func() time.Time { return now }

	limiter.Allow("1.2.3.4")
	now = now.Add(20 * time.Second)

	retry := limiter.RetryAfter("1.2.3.4")
	assert.Equal(t, 40*time.Second, retry)

	assert.Equal(t, time.Duration(0), limiter.RetryAfter("unseen"))
}
