// Package cache provides short-TTL caching for remote lookups that change
// rarely (menu categories, menu item lists), keeping repeated reads off the
// POS service.
//
// Two drivers are available, selected by CACHE_DRIVER: an in-process memory
// store (the default — a counter terminal usually runs alone) and Redis for
// sites where several terminals share one cache.
package cache

import (
	"time"

	"github.com/shashiranjanraj/barman/config"
	"github.com/shashiranjanraj/barman/pkg/logger"
)

// Store is the driver contract. Get returns true on a hit and unmarshals
// into dest; misses and driver errors both read as a miss so callers fall
// through to the remote service.
type Store interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration) error
	Del(keys ...string) error
}

var store Store = NewMemory()

// Connect initialises the configured driver. Safe to call more than once;
// a Redis connection failure logs a warning and falls back to memory.
func Connect() {
	if config.CacheDriver() != "redis" {
		store = NewMemory()
		return
	}

	rs, err := NewRedis(config.RedisAddr(), config.RedisPassword())
	if err != nil {
		logger.Warn("cache: redis unavailable, using memory driver", "error", err)
		store = NewMemory()
		return
	}
	store = rs
}

// Default returns the active store.
func Default() Store { return store }

// SetDefault overrides the active store. Used by tests.
func SetDefault(s Store) { store = s }

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(key string, dest interface{}) bool {
	return store.Get(key, dest)
}

// Set stores value under key for the given TTL.
func Set(key string, value interface{}, ttl time.Duration) error {
	return store.Set(key, value, ttl)
}

// Del removes one or more keys.
func Del(keys ...string) error {
	return store.Del(keys...)
}

// Forget is an alias for Del.
func Forget(key string) error {
	return Del(key)
}
