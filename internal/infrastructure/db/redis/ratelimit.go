package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter is a fixed-window request counter backed by Redis.
// Key format: ratelimit:login:<client_key>
type LoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginLimiter creates a limiter allowing limit attempts per window.
func NewLoginLimiter(client *redis.Client, limit int64, window time.Duration) *LoginLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow counts an attempt for key and reports whether it is within the limit,
// together with the time until the window resets.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	rkey := fmt.Sprintf("ratelimit:login:%s", key)

	n, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// first attempt in this window starts the clock
		if err := l.client.Expire(ctx, rkey, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	if n <= l.limit {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, rkey).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}
	return false, ttl, nil
}
