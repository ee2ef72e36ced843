package iata

import (
	"context"
	"sync"

	"github.com/go-redis/redis/v8"
)

// Cache stores successful place→code resolutions for the life of the process.
// Entries are never evicted or invalidated; failures are never cached.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, code string)
	Contains(ctx context.Context, key string) bool
}

// MemoryCache is a process-local Cache.
type MemoryCache struct {
	mu    sync.Mutex
	codes map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{codes: make(map[string]string)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	code, ok := c.codes[key]
	return code, ok
}

func (c *MemoryCache) Set(_ context.Context, key, code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.codes[key] = code
}

func (c *MemoryCache) Contains(ctx context.Context, key string) bool {
	_, ok := c.Get(ctx, key)
	return ok
}

const redisKeyPrefix = "iata:"

// RedisCache is a Cache backed by Redis, shared across instances.
// Keys carry no TTL; a code for a place name does not go stale.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	code, err := c.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return code, true
}

func (c *RedisCache) Set(ctx context.Context, key, code string) {
	c.client.Set(ctx, redisKeyPrefix+key, code, 0)
}

func (c *RedisCache) Contains(ctx context.Context, key string) bool {
	n, err := c.client.Exists(ctx, redisKeyPrefix+key).Result()
	return err == nil && n > 0
}
