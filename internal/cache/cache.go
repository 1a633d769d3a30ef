package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chirpnet/media-api/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetStatus(ctx context.Context, key string) ([]byte, string, error) {
	val, err := c.client.Get(ctx, getCacheKey(key, false)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, "", nil // cache miss
	}
	if err != nil {
		return nil, "", fmt.Errorf("redis get failed: %w", err)
	}

	etag, err := c.client.Get(ctx, getCacheKey(key, true)).Result()
	if errors.Is(err, redis.Nil) {
		etag = ""
	} else if err != nil {
		return nil, "", fmt.Errorf("redis get failed: %w", err)
	}

	return []byte(val), etag, nil
}

func (c *Cache) SetStatus(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) {
	log.Printf("creating status cache entry for %q, valid for %s...", key, ttl)

	if err := c.client.Set(ctx, getCacheKey(key, false), data, ttl).Err(); err != nil {
		log.Printf("❌ redis set failed for %q: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, getCacheKey(key, true), etag, ttl).Err(); err != nil {
		log.Printf("❌ redis set failed for etag of %q: %v", key, err)
	}
}

func (c *Cache) DeleteStatus(ctx context.Context, key string) error {
	log.Printf("deleting status cache entry for %q...", key)

	if err := c.client.Del(ctx, getCacheKey(key, false), getCacheKey(key, true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(key string, etag bool) string {
	if etag {
		return "etag:status:" + key
	}
	return "status:" + key
}
