package credentials

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cachedToken struct {
	value     string
	expiresAt time.Time
}

// Memory is a process-local Cache. Entries are evicted lazily: an entry whose
// expiry has passed is treated as a miss and replaced. Concurrent misses for
// the same key share a single fetch.
type Memory struct {
	options Options

	mu     sync.Mutex
	tokens map[string]cachedToken
	group  singleflight.Group
}

var _ Cache = (*Memory)(nil)

// NewMemory creates an empty in-memory cache.
func NewMemory(options Options) *Memory {
	return &Memory{
		options: options.withDefaults(),
		tokens:  make(map[string]cachedToken),
	}
}

func (m *Memory) lookup(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tok, ok := m.tokens[key]
	if !ok || !m.options.Now().Before(tok.expiresAt) {
		return "", false
	}

	return tok.value, true
}

// GetOrFetch implements Cache.
func (m *Memory) GetOrFetch(ctx context.Context, key string, fetch Fetcher) (string, error) {
	if v, ok := m.lookup(key); ok {
		return v, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		// another caller may have refreshed the entry while we waited
		if v, ok := m.lookup(key); ok {
			return v, nil
		}

		tok, err := fetch(ctx)
		if err != nil {
			return "", err
		}

		expiresAt := tok.ExpiresAt.Add(-m.options.SafetyMargin)
		if expiresAt.After(m.options.Now()) {
			m.mu.Lock()
			m.tokens[key] = cachedToken{value: tok.Value, expiresAt: expiresAt}
			m.mu.Unlock()
		}

		return tok.Value, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil //nolint: forcetypeassert
}

// Invalidate implements Invalidator.
func (m *Memory) Invalidate(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, key)
}
