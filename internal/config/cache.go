package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// CacheConfig holds all cache-related configuration.
type CacheConfig struct {
	// Directory response cache (fixed-window TTL, unbounded)
	ResponseTTLMinutes int

	// Geocode LRU cache settings
	GeocodeLRUSize       int
	GeocodeLRUTTLMinutes int

	EnableResponseCache bool
}

const (
	defaultResponseTTLMinutes   = 5
	defaultGeocodeLRUSize       = 1000
	defaultGeocodeLRUTTLMinutes = 60
)

// GetCacheConfig returns the cache configuration from environment variables
// or defaults.
func GetCacheConfig() *CacheConfig {
	config := &CacheConfig{
		ResponseTTLMinutes:   getEnvInt("CACHE_RESPONSE_TTL_MINUTES", defaultResponseTTLMinutes),
		GeocodeLRUSize:       getEnvInt("CACHE_GEOCODE_LRU_SIZE", defaultGeocodeLRUSize),
		GeocodeLRUTTLMinutes: getEnvInt("CACHE_GEOCODE_TTL_MINUTES", defaultGeocodeLRUTTLMinutes),
		EnableResponseCache:  getEnvBool("CACHE_ENABLE_RESPONSE", true),
	}

	log.Debug().
		Int("ResponseTTLMinutes", config.ResponseTTLMinutes).
		Int("GeocodeLRUSize", config.GeocodeLRUSize).
		Int("GeocodeLRUTTLMinutes", config.GeocodeLRUTTLMinutes).
		Bool("EnableResponseCache", config.EnableResponseCache).
		Msg("Cache configuration loaded")

	return config
}

func (c *CacheConfig) GetResponseTTL() time.Duration {
	return time.Duration(c.ResponseTTLMinutes) * time.Minute
}

func (c *CacheConfig) GetGeocodeLRUTTL() time.Duration {
	return time.Duration(c.GeocodeLRUTTLMinutes) * time.Minute
}

// Helper functions to get environment variables with defaults
func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
