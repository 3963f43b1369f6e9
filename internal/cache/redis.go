package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis caches results in a Redis instance shared between server replicas.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed cache against the given address.
func NewRedis(addr string) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{client: rdb}
}

// Get returns the cached value for key if present.
func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a value under key with the given ttl.
func (r *Redis) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Ping verifies connectivity to the Redis instance.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
