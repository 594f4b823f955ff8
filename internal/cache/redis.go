// internal/cache/redis.go
package cache

import (
	"context"
	"fmt"
	"time"

	"home4paws-cli/internal/common/config"
	"home4paws-cli/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "home4paws:cache"

// RedisStore is the shared-deployment backend, used when several shelter
// kiosks point at one Redis so their snapshot caches stay coherent.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisStore connects and verifies the connection with a ping.
func NewRedisStore(cfg config.RedisConfig, ttl time.Duration, log logger.Logger) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: rdb, ttl: ttl, logger: log}, nil
}

func redisKey(resource, userKey string) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, userKey, resource)
}

func (r *RedisStore) Get(ctx context.Context, resource, userKey string, out interface{}) (bool, error) {
	raw, err := r.client.Get(ctx, redisKey(resource, userKey)).Bytes()
	if err == redis.Nil {
		recordMiss(resource)
		return false, nil
	}
	if err != nil {
		recordMiss(resource)
		return false, fmt.Errorf("redis get: %w", err)
	}
	// Redis expiry already bounds entry age; the envelope TTL is still
	// honored so file and redis backends behave alike.
	ok, err := decodeSnapshot(raw, r.ttl, out)
	if err != nil || !ok {
		recordMiss(resource)
		return false, err
	}
	recordHit(resource)
	return true, nil
}

func (r *RedisStore) Put(ctx context.Context, resource, userKey string, value interface{}) error {
	raw, err := encodeSnapshot(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKey(resource, userKey), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisStore) Invalidate(ctx context.Context, resource, userKey string) error {
	if err := r.client.Del(ctx, redisKey(resource, userKey)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *RedisStore) InvalidateUser(ctx context.Context, userKey string) error {
	if userKey == "" {
		return nil
	}
	pattern := fmt.Sprintf("%s:%s:*", redisKeyPrefix, userKey)
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
