package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is the limit applied to one method and path pair.
type Rule struct {
	Method string
	Path   string
	Limit  int           // requests per Window; 0 means unlimited
	Window time.Duration
	Burst  int           // bucket capacity; falls back to Limit when 0
}

// Config controls the limiter. Exempt clients bypass limiting entirely.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Exempt          map[string]bool
	Rules           []Rule
}

// LoadConfig reads limiter settings from the environment, falling back
// to defaults suited to a small public API.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Exempt:          clientSet(os.Getenv("RATE_LIMIT_EXEMPT")),
		Rules:           DefaultRules(),
	}
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Rules:           DefaultRules(),
	}
}

// DefaultRules throttles analysis tightly: it runs the whole pipeline
// and may trigger an upstream page fetch.
func DefaultRules() []Rule {
	return []Rule{
		{Method: "POST", Path: "/analyze", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// clientSet parses a comma-separated client list into a lookup set.
func clientSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, c := range strings.Split(list, ",") {
		if c = strings.TrimSpace(c); c != "" {
			set[c] = true
		}
	}
	return set
}
