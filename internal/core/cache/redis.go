package cache

import (
	"context"
	"fmt"

	"chucklechow/internal/infrastructure/config"
	"chucklechow/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisCache backs the response cache with a Redis instance so multiple
// replicas share cached recipes.
type RedisCache struct {
	client *redis.Client
	cfg    config.CacheConfig
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg config.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	common.LogInfo("redis response cache connected",
		zap.String("addr", cfg.RedisAddr),
		zap.Duration("ttl", cfg.TTL),
	)
	return &RedisCache{client: client, cfg: cfg}, nil
}

// Get returns the cached payload, mapping redis.Nil to the standard miss
// error.
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("redis", key)
			return "", common.ErrCacheDisabled
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	common.LogCacheHit("redis", key)
	return value, nil
}

// Set stores the payload with the configured TTL.
func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, key, value, r.cfg.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
