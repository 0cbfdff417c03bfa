package cache

import (
	"context"
	"sync"

	"github.com/veridoc/entitymatch/ident"
	"github.com/veridoc/entitymatch/names"
	"github.com/veridoc/entitymatch/policy"
)

// Key builds an order-insensitive cache key for a record pair from the
// normalized input tuple. Because comparisons are symmetric, (a, b)
// and (b, a) produce the same key and share a cached verdict.
func Key(name1, id1, name2, id2 string) string {
	a := names.Normalize(name1) + "\x1f" + ident.Normalize(id1)
	b := names.Normalize(name2) + "\x1f" + ident.Normalize(id2)
	if a > b {
		a, b = b, a
	}
	return "match:" + a + "\x1e" + b
}

// Store is a verdict cache. Implementations must be safe for
// concurrent use. A failed Get or Set must never fail an evaluation;
// callers treat errors as cache misses and recompute.
type Store interface {
	// Get returns the cached verdict for the key, if present.
	Get(ctx context.Context, key string) (policy.MatchResult, bool, error)

	// Set stores the verdict for the key.
	Set(ctx context.Context, key string, result policy.MatchResult) error

	// Close releases any resources held by the store.
	Close() error
}

// MemoryStore is a process-local Store backed by a mutex-guarded map.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]policy.MatchResult
	maxEntries int
}

// Memory returns an in-memory store. maxEntries bounds the map size;
// zero or negative means unbounded. When the bound is hit, an
// arbitrary entry is evicted.
func Memory(maxEntries int) *MemoryStore {
	return &MemoryStore{
		entries:    make(map[string]policy.MatchResult),
		maxEntries: maxEntries,
	}
}

// Get returns the cached verdict for the key, if present.
func (m *MemoryStore) Get(_ context.Context, key string) (policy.MatchResult, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result, ok := m.entries[key]
	return result, ok, nil
}

// Set stores the verdict for the key, evicting an arbitrary entry if
// the store is at capacity.
func (m *MemoryStore) Set(_ context.Context, key string, result policy.MatchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists && m.maxEntries > 0 && len(m.entries) >= m.maxEntries {
		for k := range m.entries {
			delete(m.entries, k)
			break
		}
	}
	m.entries[key] = result
	return nil
}

// Len returns the number of cached verdicts.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close clears the store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]policy.MatchResult)
	return nil
}
