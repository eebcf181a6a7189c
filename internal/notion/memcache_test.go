package notion

import (
	"context"
	"time"

	"github.com/hmaeda/campdoc/internal/store"
)

// memCache is an in-memory store.CacheRepo for tests.
type memCache struct {
	entries map[string]memEntry
}

type memEntry struct {
	value     []byte
	cacheType string
	expiresAt time.Time
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]memEntry)}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := m.entries[key]
	if !ok || !e.expiresAt.After(time.Now()) {
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *memCache) Set(_ context.Context, key, cacheType string, value []byte, ttl time.Duration) error {
	m.entries[key] = memEntry{value: value, cacheType: cacheType, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

func (m *memCache) ClearExpired(context.Context) (int, error) { return 0, nil }

func (m *memCache) ClearType(_ context.Context, cacheType string) (int, error) {
	n := 0
	for k, e := range m.entries {
		if e.cacheType == cacheType {
			delete(m.entries, k)
			n++
		}
	}
	return n, nil
}

func (m *memCache) Stats(context.Context) (store.CacheStats, error) {
	return store.CacheStats{Total: len(m.entries), ByType: map[string]int{}}, nil
}

func (m *memCache) Cleanup(context.Context, time.Duration) (int, error) { return 0, nil }
