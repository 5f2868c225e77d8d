// Package ratelimit provides per-client request limiting using token buckets.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// bucket is a token bucket that refills at a steady rate.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (b *bucket) allow() (ok bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > float64(b.capacity) {
		b.tokens = float64(b.capacity)
	}
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		ok = true
	}

	remaining = int(b.tokens)
	if b.tokens < float64(b.capacity) {
		needed := float64(b.capacity) - b.tokens
		reset = now.Add(time.Duration(needed / b.refillRate * float64(time.Second)))
	} else {
		reset = now
	}
	return ok, remaining, reset
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetTime time.Time
}

// Rule sets the limit for requests matching a method and path prefix.
type Rule struct {
	PathPrefix string
	Method     string
	Limit      int // requests per window
	Window     time.Duration
	Burst      int // bucket capacity, defaults to Limit
}

// Limiter tracks one token bucket per client and rule.
type Limiter struct {
	config  *Config
	buckets map[string]*bucket
	mu      sync.Mutex

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	lastAccess    map[string]time.Time
}

// NewLimiter creates a limiter. A nil config uses defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether clientID may perform the given request now.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	// Health checks are never limited
	if path == "/health" {
		return true, Info{Allowed: true}
	}

	rule := l.match(path, method)

	key := clientID + "|" + rule.Method + "|" + rule.PathPrefix
	l.mu.Lock()
	b, exists := l.buckets[key]
	if !exists {
		burst := rule.Burst
		if burst == 0 {
			burst = rule.Limit
		}
		b = newBucket(burst, float64(rule.Limit)/rule.Window.Seconds())
		l.buckets[key] = b
	}
	l.lastAccess[key] = time.Now()
	l.mu.Unlock()

	ok, remaining, reset := b.allow()
	return ok, Info{
		Allowed:   ok,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

// match returns the first rule whose method and path prefix match, or the
// default rule.
func (l *Limiter) match(path, method string) Rule {
	for _, rule := range l.config.Rules {
		if rule.Method == method && strings.HasPrefix(path, rule.PathPrefix) {
			return rule
		}
	}
	return Rule{
		PathPrefix: "",
		Method:     method,
		Limit:      l.config.DefaultLimit,
		Window:     l.config.DefaultWindow,
	}
}

// cleanupLoop drops buckets that have not been touched for two cleanup
// intervals, bounding memory for churning client populations.
func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-2 * l.config.CleanupInterval)
			l.mu.Lock()
			for key, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, key)
					delete(l.lastAccess, key)
				}
			}
			l.mu.Unlock()
		case <-l.cleanupStop:
			return
		}
	}
}
