package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key and forgets keys idle for longer than ttl.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	entries map[string]*limiterEntry
	mutex   sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewRateLimiter(limit rate.Limit, burst int, ttl time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		entries: make(map[string]*limiterEntry),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	// Start cleanup goroutine
	go rl.cleanupStaleEntries()
	return rl
}

// NewWindowLimiter allows max events per window, refilling evenly.
func NewWindowLimiter(window time.Duration, max int) *RateLimiter {
	if max <= 0 {
		max = 1
	}
	return NewRateLimiter(rate.Every(window/time.Duration(max)), max, window)
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	entry, ok := rl.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.entries[key] = entry
	}
	entry.lastSeen = time.Now()
	rl.mutex.Unlock()

	return entry.limiter.Allow()
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
	<-rl.done
}

func (rl *RateLimiter) cleanupStaleEntries() {
	defer close(rl.done)
	interval := rl.ttl
	if interval <= 0 || interval > time.Hour {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	for key, entry := range rl.entries {
		if now.Sub(entry.lastSeen) > rl.ttl {
			delete(rl.entries, key)
		}
	}
}

func (rl *RateLimiter) size() int {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	return len(rl.entries)
}
