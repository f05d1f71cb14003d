package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"movie-search-service/internal/config"
)

// NewRedis creates a new Redis client.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("connected to Redis", "addr", cfg.Addr)
	return client, nil
}

// KV exposes Redis as a plain string key-value store for the
// favorites and display-preference keys.
type KV struct {
	rdb *redis.Client
}

// NewKV wraps a Redis client.
func NewKV(rdb *redis.Client) *KV {
	return &KV{rdb: rdb}
}

// Get returns the stored value, or empty string when the key is unset.
func (k *KV) Get(ctx context.Context, key string) (string, error) {
	val, err := k.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return val, nil
}

// Set overwrites the stored value. Values have no expiry.
func (k *KV) Set(ctx context.Context, key, value string) error {
	if err := k.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
