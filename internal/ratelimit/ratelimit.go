// Package ratelimit provides the fixed-window request counter behind the
// API rate limiter. The counter is an injected capability so a deployment
// can swap the process-local map for a shared Redis counter.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter increments the hit count for a key inside the current window
// and returns the resulting count.
type Counter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// MemoryCounter is a best-effort in-process counter. It is not
// authoritative across multiple server processes.
type MemoryCounter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count     int64
	expiresAt time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{entries: make(map[string]*windowEntry)}
}

func (c *MemoryCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || now.After(e.expiresAt) {
		e = &windowEntry{expiresAt: now.Add(window)}
		c.entries[key] = e
	}
	e.count++

	// Opportunistic cleanup keeps the map from growing unbounded.
	if len(c.entries) > 10000 {
		for k, v := range c.entries {
			if now.After(v.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
	return e.count, nil
}

// RedisCounter is shared across processes. The key expires with the
// window, set on the first hit.
type RedisCounter struct {
	client *redis.Client
	prefix string
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client, prefix: "ratelimit:"}
}

func (c *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	full := c.prefix + key
	count, err := c.client.Incr(ctx, full).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := c.client.PExpire(ctx, full, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}
