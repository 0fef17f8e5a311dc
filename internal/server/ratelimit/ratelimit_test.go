package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, cfg *Config) *Limiter {
	t.Helper()
	l := NewLimiter(cfg)
	t.Cleanup(l.Stop)
	return l
}

func analyzeConfig(limit, burst int, window time.Duration) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{Method: "POST", Path: "/analyze", Limit: limit, Window: window, Burst: burst},
		},
	}
}

func TestAllowConsumesBurst(t *testing.T) {
	l := newTestLimiter(t, analyzeConfig(60, 5, time.Minute))

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("10.0.0.1", "/analyze", "POST")
		require.True(t, allowed, "request %d should fit in the burst", i+1)
		assert.Equal(t, 60, info.Limit)
	}

	allowed, info := l.Allow("10.0.0.1", "/analyze", "POST")
	assert.False(t, allowed, "request beyond the burst is denied")
	assert.Zero(t, info.Remaining)
	assert.Positive(t, info.RetryAfter)
	assert.True(t, info.ResetTime.After(time.Now()), "reset time is in the future")
}

func TestRemainingCountsDown(t *testing.T) {
	l := newTestLimiter(t, analyzeConfig(60, 10, time.Minute))

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("10.0.0.1", "/analyze", "POST")
		require.True(t, allowed)
		assert.Equal(t, 9-i, info.Remaining)
	}
}

func TestTokensRefillOverTime(t *testing.T) {
	// 600 per minute is 10 tokens per second.
	l := newTestLimiter(t, analyzeConfig(600, 1, time.Minute))

	allowed, _ := l.Allow("10.0.0.1", "/analyze", "POST")
	require.True(t, allowed)

	allowed, _ = l.Allow("10.0.0.1", "/analyze", "POST")
	require.False(t, allowed, "bucket of one is empty after a single request")

	time.Sleep(150 * time.Millisecond)

	allowed, _ = l.Allow("10.0.0.1", "/analyze", "POST")
	assert.True(t, allowed, "a token refills within the wait")
}

func TestHealthNeverLimited(t *testing.T) {
	l := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 20; i++ {
		allowed, info := l.Allow("10.0.0.1", "/health", "GET")
		require.True(t, allowed, "health check %d should bypass limiting", i+1)
		assert.Zero(t, info.Limit)
	}
}

func TestDefaultRuleAppliesToUnlistedPaths(t *testing.T) {
	l := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 2; i++ {
		allowed, info := l.Allow("10.0.0.1", "/other", "GET")
		require.True(t, allowed)
		assert.Equal(t, 2, info.Limit)
	}

	allowed, _ := l.Allow("10.0.0.1", "/other", "GET")
	assert.False(t, allowed, "default tier is enforced for unlisted paths")
}

func TestClientsAreLimitedIndependently(t *testing.T) {
	l := newTestLimiter(t, analyzeConfig(60, 1, time.Minute))

	allowed, _ := l.Allow("10.0.0.1", "/analyze", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("10.0.0.1", "/analyze", "POST")
	require.False(t, allowed, "first client exhausted its bucket")

	allowed, _ = l.Allow("10.0.0.2", "/analyze", "POST")
	assert.True(t, allowed, "second client has its own bucket")
}

func TestExemptClientBypassesLimits(t *testing.T) {
	cfg := analyzeConfig(60, 1, time.Minute)
	cfg.Exempt = map[string]bool{"10.0.0.9": true}
	l := newTestLimiter(t, cfg)

	for i := 0; i < 20; i++ {
		allowed, info := l.Allow("10.0.0.9", "/analyze", "POST")
		require.True(t, allowed, "exempt request %d should be allowed", i+1)
		assert.Zero(t, info.Limit)
	}
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	l := newTestLimiter(t, &Config{Enabled: false})

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("10.0.0.1", "/analyze", "POST")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestConcurrentRequestsHonorCapacity(t *testing.T) {
	l := newTestLimiter(t, analyzeConfig(50, 50, time.Minute))

	var wg sync.WaitGroup
	var allowedCount atomic.Int64

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := l.Allow("10.0.0.1", "/analyze", "POST"); allowed {
				allowedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), allowedCount.Load())
}

func TestEvictIdleDropsStaleBuckets(t *testing.T) {
	l := newTestLimiter(t, analyzeConfig(60, 10, time.Minute))

	l.Allow("10.0.0.1", "/analyze", "POST")
	l.Allow("10.0.0.2", "/analyze", "POST")

	l.evictIdle(time.Now().Add(time.Second))

	l.mu.Lock()
	remaining := len(l.entries)
	l.mu.Unlock()
	assert.Zero(t, remaining, "buckets older than the cutoff are dropped")
}

func TestNilConfigUsesDefaults(t *testing.T) {
	l := newTestLimiter(t, nil)

	allowed, info := l.Allow("10.0.0.1", "/other", "GET")
	require.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfig()
		require.True(t, cfg.Enabled)
		assert.Equal(t, 1000, cfg.DefaultLimit)
		assert.Equal(t, time.Minute, cfg.DefaultWindow)
		require.Len(t, cfg.Rules, 1)
		assert.Equal(t, "/analyze", cfg.Rules[0].Path)
	})

	t.Run("disabled via env", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_ENABLED", "false")
		cfg := LoadConfig()
		assert.False(t, cfg.Enabled)
	})

	t.Run("overrides and exempt list", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "25")
		t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
		t.Setenv("RATE_LIMIT_EXEMPT", "10.0.0.1, 10.0.0.2")
		cfg := LoadConfig()
		assert.Equal(t, 25, cfg.DefaultLimit)
		assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
		assert.True(t, cfg.Exempt["10.0.0.1"])
		assert.True(t, cfg.Exempt["10.0.0.2"])
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "lots")
		t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "soon")
		cfg := LoadConfig()
		assert.Equal(t, 1000, cfg.DefaultLimit)
		assert.Equal(t, time.Minute, cfg.DefaultWindow)
	})
}
