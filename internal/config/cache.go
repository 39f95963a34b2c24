package config

import (
	"strings"
	"time"
)

// CacheConfig tunes the Redis response cache in front of the public
// read-only views (venue document, menu, slot grid, occupancy).  Those
// endpoints are what guests poll while deciding whether to ring up, so
// short-TTL caching absorbs most of the read traffic.  When disabled,
// or when no Redis client is available, the middleware passes requests
// straight through.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool // HTTP methods eligible for caching
	TTL          time.Duration
	KeyStrategy  string // which request parts form the cache key
	Prefix       string // Redis key namespace
	MaxBodyBytes int    // responses larger than this are not cached
}

// LoadCacheConfig reads the CACHE_* environment variables with defaults
// suited to the public views: GET only, 30 second TTL, keys on route
// plus query string (occupancy varies by ?moment/?time).
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      parseMethods(envStr("CACHE_METHODS", "GET")),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		KeyStrategy:  envStr("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

func parseMethods(s string) map[string]bool {
	m := make(map[string]bool)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(strings.ToUpper(p)); p != "" {
			m[p] = true
		}
	}
	return m
}
