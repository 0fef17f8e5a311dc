// Package ratelimit throttles requests per client using token buckets.
// Analysis is the only expensive surface this API exposes, so the rule
// table is short; health checks are never limited.
package ratelimit

import (
	"net/http"
	"sync"
	"time"
)

// bucketIdleTTL is how long an untouched client bucket survives before
// the sweep drops it.
const bucketIdleTTL = time.Hour

// Info describes the outcome of a limit check, in the units the
// X-RateLimit response headers want. The zero Info means no limit
// applied to the request.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket is a token bucket refilled continuously at rate tokens per
// second.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	tokens   float64
	last     time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		last:     time.Now(),
	}
}

// take consumes one token, reporting whether one was available.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(time.Now())
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// status reports the remaining tokens and when the bucket will be full
// again, without consuming anything.
func (b *bucket) status() (remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refill(now)
	if b.tokens >= b.capacity {
		return int(b.tokens), now
	}
	wait := (b.capacity - b.tokens) / b.rate
	return int(b.tokens), now.Add(time.Duration(wait * float64(time.Second)))
}

// refill credits tokens for the time since the last touch. Callers hold
// b.mu.
func (b *bucket) refill(now time.Time) {
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.last).Seconds()*b.rate)
	b.last = now
}

// entry pairs a bucket with its last access time for the idle sweep.
type entry struct {
	b        *bucket
	lastSeen time.Time
}

// Limiter tracks one bucket per client and endpoint.
type Limiter struct {
	cfg *Config

	mu      sync.Mutex
	entries map[string]*entry

	ticker *time.Ticker
	done   chan struct{}
}

// NewLimiter builds a limiter from cfg; nil selects the defaults.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = defaultConfig()
	}

	l := &Limiter{
		cfg:     cfg,
		entries: make(map[string]*entry),
	}

	if cfg.Enabled && cfg.CleanupInterval > 0 {
		l.ticker = time.NewTicker(cfg.CleanupInterval)
		l.done = make(chan struct{})
		go l.sweep()
	}

	return l
}

// Allow reports whether clientID may call method path right now,
// consuming a token when it may.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.cfg.Enabled || l.cfg.Exempt[clientID] {
		return true, Info{}
	}

	rule := l.ruleFor(method, path)
	if rule.Limit <= 0 {
		return true, Info{}
	}

	b := l.bucketFor(clientID+"|"+method+"|"+path, rule)
	allowed := b.take()
	remaining, reset := b.status()

	info := Info{Limit: rule.Limit, Remaining: remaining, ResetTime: reset}
	if !allowed {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return allowed, info
}

// ruleFor resolves the limit for one request. Health checks are
// unlimited; anything without an explicit rule gets the default tier.
func (l *Limiter) ruleFor(method, path string) Rule {
	if method == http.MethodGet && path == "/health" {
		return Rule{}
	}
	for _, r := range l.cfg.Rules {
		if r.Method == method && r.Path == path {
			return r
		}
	}
	return Rule{Limit: l.cfg.DefaultLimit, Window: l.cfg.DefaultWindow}
}

func (l *Limiter) bucketFor(key string, rule Rule) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		capacity := rule.Burst
		if capacity <= 0 {
			capacity = rule.Limit
		}
		e = &entry{b: newBucket(capacity, float64(rule.Limit)/rule.Window.Seconds())}
		l.entries[key] = e
	}
	e.lastSeen = time.Now()
	return e.b
}

func (l *Limiter) sweep() {
	for {
		select {
		case <-l.ticker.C:
			l.evictIdle(time.Now().Add(-bucketIdleTTL))
		case <-l.done:
			return
		}
	}
}

// evictIdle drops buckets not touched since the cutoff so one-off
// clients do not accumulate forever.
func (l *Limiter) evictIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, key)
		}
	}
}

// Stop ends the idle sweep goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.done != nil {
		close(l.done)
	}
}
