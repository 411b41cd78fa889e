// Package cache provides the optional Redis client used to cache GitHub
// proxy responses.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// New connects to Redis at addr. It returns nil when addr is empty or the
// server is unreachable; callers treat a nil client as cache-disabled.
func New(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, continuing without cache", "addr", addr, "error", err)
		client.Close()
		return nil
	}

	slog.Info("redis connected", "addr", addr)
	return client
}
