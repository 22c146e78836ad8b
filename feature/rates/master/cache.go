package master

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Source loads the full master routing table.
type Source interface {
	ListAll(ctx context.Context) ([]Record, error)
}

// cacheKey is the single key everything is stored under: the cache holds
// the full unfiltered table and callers filter per vendor.
const cacheKey = "master"

// entry pairs the loaded rows with their expiry, fixed when the entry is
// written.
type entry struct {
	rows    []Record
	expires time.Time
	ttl     time.Duration
}

// expired returns true once the entry's write-time deadline has passed.
// A zero TTL disables caching entirely.
func (e *entry) expired() bool {
	if e.ttl == 0 {
		return true
	}
	return time.Now().After(e.expires)
}

// Cache serves the master routing table with a TTL. Concurrent readers
// are unrestricted; concurrent fills collapse into a single source call.
// Construct with NewCache; one instance is shared by all runs.
type Cache struct {
	source Source
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[string]*entry
	sf      singleflight.Group
}

// NewCache creates a cache over the given source.
func NewCache(source Source, ttl time.Duration) *Cache {
	return &Cache{
		source:  source,
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

// MasterData returns the cached table, filling it from the source when
// missing or expired. Calls within the TTL receive the same slice; it
// must be treated as read-only. Source errors propagate unchanged and
// leave the cache empty.
func (c *Cache) MasterData(ctx context.Context) ([]Record, error) {
	c.mu.RLock()
	e, ok := c.entries[cacheKey]
	c.mu.RUnlock()

	if ok && !e.expired() {
		return e.rows, nil
	}

	result, err, _ := c.sf.Do(cacheKey, func() (interface{}, error) {
		// Double-check after acquiring the flight: another caller may
		// have filled the entry while we waited.
		c.mu.RLock()
		e, ok := c.entries[cacheKey]
		c.mu.RUnlock()

		if ok && !e.expired() {
			return e.rows, nil
		}

		rows, err := c.source.ListAll(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[cacheKey] = &entry{
			rows:    rows,
			expires: time.Now().Add(c.ttl),
			ttl:     c.ttl,
		}
		c.mu.Unlock()

		return rows, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]Record), nil
}

// Invalidate drops every cached entry; the next call fetches fresh data.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}
