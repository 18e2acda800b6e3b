package sampler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/astro-fusion/numerology-white-paper/pkg/metrics"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/redis"
)

// Cache memoizes assessments by planet and instant. Implementations must be
// safe for concurrent use; failures degrade to a miss, never an error.
type Cache interface {
	Get(ctx context.Context, key string) (*models.Assessment, bool)
	Set(ctx context.Context, key string, assessment *models.Assessment)
}

// CacheKey builds the memoization key for a planet at an instant. Instants
// are normalized to UTC so equal moments always share an entry.
func CacheKey(planet models.Planet, instant time.Time) string {
	return fmt.Sprintf("dignity:%s:%s", planet, instant.UTC().Format(time.RFC3339))
}

// MemoryCache is an in-process cache with no eviction. Suitable for single
// instances and tests.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*models.Assessment
}

// NewMemoryCache creates an empty in-process cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*models.Assessment),
	}
}

// Get retrieves a cached assessment
func (c *MemoryCache) Get(_ context.Context, key string) (*models.Assessment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	assessment, ok := c.entries[key]
	return assessment, ok
}

// Set stores an assessment
func (c *MemoryCache) Set(_ context.Context, key string, assessment *models.Assessment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = assessment
}

// Len returns the number of cached entries
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// RedisCache shares memoized assessments across instances. Planetary
// positions at a fixed instant never change, so entries only expire to bound
// memory, not for correctness.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger ectologger.Logger
}

// NewRedisCache creates a Redis-backed cache
func NewRedisCache(client *redis.Client, ttl time.Duration, logger ectologger.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get retrieves a cached assessment. Redis failures are logged and reported
// as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (*models.Assessment, bool) {
	raw, err := c.client.Get(ctx, key)
	if err != nil {
		if !redis.IsMiss(err) {
			c.logger.WithContext(ctx).WithError(err).Warn("Sample cache read failed")
		}
		return nil, false
	}

	var assessment models.Assessment
	if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Sample cache entry corrupt, discarding")
		if delErr := c.client.Del(ctx, key); delErr != nil {
			c.logger.WithContext(ctx).WithError(delErr).Warn("Failed to drop corrupt cache entry")
		}
		return nil, false
	}

	return &assessment, true
}

// Set stores an assessment. Redis failures are logged and dropped.
func (c *RedisCache) Set(ctx context.Context, key string, assessment *models.Assessment) {
	data, err := json.Marshal(assessment)
	if err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Failed to encode sample cache entry")
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Sample cache write failed")
	}
}

// cacheGet wraps a Cache lookup with hit/miss metrics
func cacheGet(ctx context.Context, cache Cache, key string) (*models.Assessment, bool) {
	assessment, ok := cache.Get(ctx, key)
	if ok {
		metrics.RecordCacheHit()
	} else {
		metrics.RecordCacheMiss()
	}
	return assessment, ok
}
