package translate

import (
	"context"
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/redis"
	"github.com/carlosgonzalezvergara/vendler/utils"
	"sync"
	"time"
)

// Cache remembers translations between requests.
type Cache interface {
	Get(ctx context.Context, text string) (string, bool, error)
	Set(ctx context.Context, text, translation string) error
}

type MemoryCache struct {
	entries sync.Map
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Get(_ context.Context, text string) (string, bool, error) {
	v, ok := c.entries.Load(text)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (c *MemoryCache) Set(_ context.Context, text, translation string) error {
	c.entries.Store(text, translation)
	return nil
}

type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache shares translations between instances. Keys are murmur3 hashes
// of the text.
type RedisCache struct {
	store store
	ttl   time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{store: client, ttl: ttl}
}

func cacheKey(text string) string {
	return fmt.Sprintf("gloss:%016x", utils.HashString(text))
}

func (c *RedisCache) Get(ctx context.Context, text string) (string, bool, error) {
	b, err := c.store.Get(ctx, cacheKey(text))
	if errors.Is(err, redis.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (c *RedisCache) Set(ctx context.Context, text, translation string) error {
	return c.store.Set(ctx, cacheKey(text), []byte(translation), c.ttl)
}
