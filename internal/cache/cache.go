package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON layer over Redis. A nil *Cache is valid and disables
// caching, so callers never need to branch on configuration.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at addr. Returns nil when addr is empty or the
// server is unreachable; the app then runs without a cache.
func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[cache] redis unreachable at %s: %v (continuing without cache)", addr, err)
		return nil
	}
	return &Cache{client: client}
}

// GetJSON reads key into dest. Returns (false, nil) on miss or when the
// cache is disabled.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	s, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and stores it under key with a TTL. Best-effort.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Delete drops keys, e.g. to invalidate after a write.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[cache] delete %v failed: %v", keys, err)
	}
}
