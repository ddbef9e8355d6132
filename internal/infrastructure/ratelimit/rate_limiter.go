package ratelimit

import (
	"sync"
	"time"
)

const (
	ActionAssistantChat = "assistant_chat"
	ActionPaymentIntent = "payment_intent"
	ActionInquiry       = "inquiry"
	ActionImageUpload   = "image_upload"
)

// TokenBucket refills refillRate tokens every refillTime, up to maxTokens.
type TokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
	lastUsed   time.Time
	mutex      sync.Mutex
}

func NewTokenBucket(maxTokens, refillRate int, refillTime time.Duration, now time.Time) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: now,
		lastUsed:   now,
	}
}

// Allow consumes a token if one is available. When it is not, the returned
// duration is the wait until the next refill.
func (tb *TokenBucket) Allow(now time.Time) (bool, time.Duration) {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	tb.lastUsed = now

	intervals := int(now.Sub(tb.lastRefill) / tb.refillTime)
	if intervals > 0 {
		tb.tokens += intervals * tb.refillRate
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = tb.lastRefill.Add(time.Duration(intervals) * tb.refillTime)
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}

	return false, tb.lastRefill.Add(tb.refillTime).Sub(now)
}

func (tb *TokenBucket) Tokens() int {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()
	return tb.tokens
}

type limit struct {
	burst  int
	refill time.Duration
}

var limits = map[string]limit{
	// 10 requests, then one every 6s.
	ActionAssistantChat: {burst: 10, refill: 6 * time.Second},
	ActionPaymentIntent: {burst: 5, refill: 12 * time.Second},
	ActionInquiry:       {burst: 10, refill: time.Minute},
	ActionImageUpload:   {burst: 20, refill: 3 * time.Second},
}

var defaultLimit = limit{burst: 20, refill: 3 * time.Second}

// RateLimiter keeps one bucket per (subject, action). Subject is a user id or
// a client IP.
type RateLimiter struct {
	buckets map[string]*TokenBucket
	mutex   sync.RWMutex
	now     func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*TokenBucket),
		now:     time.Now,
	}
}

func (rl *RateLimiter) Allow(subject, action string) (bool, time.Duration) {
	key := subject + ":" + action
	now := rl.now()

	rl.mutex.RLock()
	bucket, exists := rl.buckets[key]
	rl.mutex.RUnlock()

	if !exists {
		rl.mutex.Lock()
		if bucket, exists = rl.buckets[key]; !exists {
			l, ok := limits[action]
			if !ok {
				l = defaultLimit
			}
			bucket = NewTokenBucket(l.burst, 1, l.refill, now)
			rl.buckets[key] = bucket
		}
		rl.mutex.Unlock()
	}

	return bucket.Allow(now)
}

// Cleanup drops buckets idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) int {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	removed := 0
	for key, bucket := range rl.buckets {
		bucket.mutex.Lock()
		idle := now.Sub(bucket.lastUsed)
		bucket.mutex.Unlock()

		if idle > maxIdle {
			delete(rl.buckets, key)
			removed++
		}
	}
	return removed
}

// StartCleanupRoutine runs Cleanup every interval until done is closed.
func (rl *RateLimiter) StartCleanupRoutine(interval time.Duration, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.Cleanup(time.Hour)
			case <-done:
				return
			}
		}
	}()
}
