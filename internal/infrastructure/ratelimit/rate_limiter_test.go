package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestLimiter() (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter()
	rl.now = clock.Now
	return rl, clock
}

func TestRateLimiterBurstThenRefill(t *testing.T) {
	rl, clock := newTestLimiter()

	for i := 0; i < 5; i++ {
		ok, _ := rl.Allow("1.2.3.4", ActionPaymentIntent)
		assert.True(t, ok, "request %d", i)
	}

	ok, wait := rl.Allow("1.2.3.4", ActionPaymentIntent)
	assert.False(t, ok)
	assert.Equal(t, 12*time.Second, wait)

	clock.Advance(5 * time.Second)
	ok, wait = rl.Allow("1.2.3.4", ActionPaymentIntent)
	assert.False(t, ok)
	assert.Equal(t, 7*time.Second, wait)

	clock.Advance(7 * time.Second)
	ok, _ = rl.Allow("1.2.3.4", ActionPaymentIntent)
	assert.True(t, ok)
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter()

	for i := 0; i < 5; i++ {
		rl.Allow("a", ActionPaymentIntent)
	}
	ok, _ := rl.Allow("a", ActionPaymentIntent)
	assert.False(t, ok)

	ok, _ = rl.Allow("b", ActionPaymentIntent)
	assert.True(t, ok)

	ok, _ = rl.Allow("a", ActionAssistantChat)
	assert.True(t, ok)
}

func TestRateLimiterCleanup(t *testing.T) {
	rl, clock := newTestLimiter()

	rl.Allow("idle", ActionInquiry)
	clock.Advance(2 * time.Hour)
	rl.Allow("active", ActionInquiry)

	assert.Equal(t, 1, rl.Cleanup(time.Hour))
	assert.Len(t, rl.buckets, 1)
	_, ok := rl.buckets["active:"+ActionInquiry]
	assert.True(t, ok)
}

func TestTokenBucketCapsAtMax(t *testing.T) {
	start := time.Now()
	tb := NewTokenBucket(3, 1, time.Second, start)

	tb.Allow(start)
	tb.Allow(start.Add(time.Hour))
	assert.Equal(t, 2, tb.Tokens())
}
