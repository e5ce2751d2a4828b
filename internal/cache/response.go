package cache

import (
	"sync"
	"time"
)

// ResponseEntry wraps a cached payload with its insertion time.
type ResponseEntry struct {
	Data     []byte
	StoredAt time.Time
}

// ResponseCache is a fixed-window TTL cache for directory responses. Entries
// expire a fixed duration after insertion regardless of access pattern; a
// lookup past that point evicts the entry and reports a miss. There is no
// capacity-based eviction and no refetch on expiry; retry policy belongs to
// the caller.
type ResponseCache struct {
	entries map[string]ResponseEntry
	ttl     time.Duration
	clock   clock
	mu      sync.RWMutex
}

// NewResponseCache creates a cache with the given TTL.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		entries: make(map[string]ResponseEntry),
		ttl:     ttl,
		clock:   systemClock{},
	}
}

// Set stores a value with the current timestamp, overwriting any existing
// entry for that key.
func (c *ResponseCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = ResponseEntry{
		Data:     value,
		StoredAt: c.clock.Now(),
	}
}

// Get returns the stored value iff the elapsed time since storage is within
// the TTL. An expired entry is removed and reported as a miss.
func (c *ResponseCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.clock.Now().Sub(entry.StoredAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	return entry.Data, true
}

// Clear empties all entries.
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]ResponseEntry)
}

// Size reports the current entry count, expired entries included until they
// are looked up.
func (c *ResponseCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
