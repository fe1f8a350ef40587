// Package redis holds the Redis connection helper and the user profile
// cache.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config holds the connection settings for the cache backend.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect builds a Redis client and pings it once so an unreachable cache
// backend surfaces at startup.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
