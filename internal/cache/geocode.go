package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/chargescout/chargescout/backend-go/internal/config"
	"github.com/chargescout/chargescout/backend-go/internal/models"
)

// GeocodeCacheEntry wraps a cached location with its expiry.
type GeocodeCacheEntry struct {
	Location  models.Location
	ExpiresAt time.Time
}

// GeocodeCache is a capacity-bounded LRU with per-entry TTL for geocoding
// results. Unlike ResponseCache it may evict under capacity pressure; the
// fixed-window response-cache contract does not apply here.
type GeocodeCache struct {
	lru    *lru.Cache[string, *GeocodeCacheEntry]
	ttl    time.Duration
	clock  clock
	hits   uint64
	misses uint64
	mu     sync.RWMutex
}

// NewGeocodeCache creates a geocode cache from configuration.
func NewGeocodeCache(cfg *config.CacheConfig) (*GeocodeCache, error) {
	lruCache, err := lru.New[string, *GeocodeCacheEntry](cfg.GeocodeLRUSize)
	if err != nil {
		return nil, err
	}

	return &GeocodeCache{
		lru:   lruCache,
		ttl:   cfg.GetGeocodeLRUTTL(),
		clock: systemClock{},
	}, nil
}

// Add stores a location under the given key.
func (c *GeocodeCache) Add(key string, loc models.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Add(key, &GeocodeCacheEntry{
		Location:  loc,
		ExpiresAt: c.clock.Now().Add(c.ttl),
	})
}

// Get returns a cached location if present and unexpired.
func (c *GeocodeCache) Get(key string) (models.Location, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.lru.Get(key)
	if !ok {
		c.misses++
		return models.Location{}, false
	}

	if c.clock.Now().After(entry.ExpiresAt) {
		c.lru.Remove(key)
		c.misses++
		return models.Location{}, false
	}

	c.hits++
	return entry.Location, true
}

// Stats returns hit/miss counts.
func (c *GeocodeCache) Stats() map[string]uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]uint64{
		"hits":   c.hits,
		"misses": c.misses,
	}
}

// Purge removes all entries.
func (c *GeocodeCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Purge()
}
