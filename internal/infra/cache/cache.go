package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"majestic-manor/internal/observability"
)

// Cache is a thin JSON read-through cache over Redis. A nil *Redis behaves as
// a disabled cache so callers never branch on configuration.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	DelPrefix(ctx context.Context, prefix string) error
}

type Redis struct {
	c *redis.Client
}

func New(addr, pass string, db int) *Redis {
	if addr == "" {
		return nil
	}
	return &Redis{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func NewFromClient(c *redis.Client) *Redis {
	return &Redis{c: c}
}

func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	if r == nil {
		return false, nil
	}
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveCache("redis", "hit")
	return true, json.Unmarshal(v, dst)
}

func (r *Redis) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if r == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveCache("redis", "set")
	return r.c.Set(ctx, key, b, ttl).Err()
}

// DelPrefix drops every key under the prefix. The room catalog is small, so a
// SCAN walk is cheap and avoids tracking individual keys on invalidation.
func (r *Redis) DelPrefix(ctx context.Context, prefix string) error {
	if r == nil {
		return nil
	}
	iter := r.c.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.c.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
		observability.ObserveCache("redis", "del")
	}
	return iter.Err()
}

func (r *Redis) Close() error {
	if r == nil {
		return nil
	}
	return r.c.Close()
}
