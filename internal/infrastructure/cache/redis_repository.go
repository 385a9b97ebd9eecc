// Package cache provides the Redis-backed cache repository
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/infrastructure/config"
	"github.com/kaloria/v1/internal/ports/outbound"
)

// ErrKeyNotFound reports a cache miss.
var ErrKeyNotFound = errors.New("key not found")

// RedisRepository implements the cache repository on Redis
type RedisRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisClient connects a Redis client from configuration
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
		PoolSize: cfg.Redis.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// NewRedisRepository creates a Redis cache repository
func NewRedisRepository(client *redis.Client, logger *zap.Logger) outbound.CacheRepository {
	return &RedisRepository{
		client: client,
		logger: logger.Named("redis-cache"),
	}
}

// Get retrieves a value from Redis
func (r *RedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set stores a value in Redis with TTL
func (r *RedisRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Exists reports whether a key is present
func (r *RedisRepository) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
