package cache

import (
	"sync"
	"time"
)

// Store is the read-through cache capability injected into the discovery
// layer. Implementations are best-effort: a stale or missing entry is never
// an error, and nothing downstream may treat a hit as fresh.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
}

// TTL policy for the discovery read paths.
const (
	SearchTTL   = 5 * time.Minute
	TrendingTTL = 15 * time.Minute
	RecentTTL   = 10 * time.Minute
)

type entry struct {
	value   any
	expires time.Time
}

// Memory is an in-process Store. Expiry is checked on read; there is no
// background janitor, expired entries are overwritten on the next compute.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry)}
}

func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(key string, value any, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = entry{value: value, expires: time.Now().Add(ttl)}
	m.mu.Unlock()
}

// GetOrCompute returns the cached value for key, or invokes compute and
// stores its result under a fresh TTL. Compute errors are returned without
// caching anything.
func GetOrCompute[T any](s Store, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if v, ok := s.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	s.Set(key, v, ttl)
	return v, nil
}
