package cache

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/shashiranjanraj/barman/pkg/metrics"
)

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// Memory is an in-process TTL store. Values are kept JSON-encoded so Get
// semantics match the Redis driver exactly.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(key string, dest interface{}) bool {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || time.Now().After(entry.expires) {
		if ok {
			// Expired entries are reaped lazily on the next read.
			m.mu.Lock()
			delete(m.entries, key)
			m.mu.Unlock()
		}
		metrics.CacheMisses.WithLabelValues("memory").Inc()
		return false
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		metrics.CacheMisses.WithLabelValues("memory").Inc()
		return false
	}

	metrics.CacheHits.WithLabelValues("memory").Inc()
	return true
}

func (m *Memory) Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{data: data, expires: time.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Del(keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	m.mu.Unlock()
	return nil
}
