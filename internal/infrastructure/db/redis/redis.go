// Package redis provides the Redis client behind login throttling. The whole
// package is optional: when no address is configured the service runs without
// it and only loses the throttle.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// dialTimeout bounds the startup ping. The limiter itself fails open, so a
// short bound here only delays startup, never a login.
const dialTimeout = 5 * time.Second

// Config holds the connection settings for the throttle store.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration // startup ping bound, dialTimeout when zero
}

// Connect builds the client and pings it once, so a misconfigured address is
// a startup failure instead of a silent throttle outage.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = dialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
