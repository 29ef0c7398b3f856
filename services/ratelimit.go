package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter is a fixed-window counter backed by Redis. The window is not
// sliding: a key's count resets only when its TTL expires, so bursts at
// window boundaries can exceed the nominal rate.
type RateLimiter struct {
	client *redis.Client
	budget int64
	window time.Duration
	log    *zap.Logger
}

func NewRateLimiter(client *redis.Client, budget int, window time.Duration, log *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		budget: int64(budget),
		window: window,
		log:    log,
	}
}

// Key builds the counter key for an identity. Scope is "user" for
// authenticated callers and "ip" otherwise, so a signed-in user is limited
// consistently across networks.
func (r *RateLimiter) Key(scope, identity string) string {
	return fmt.Sprintf("rl:%s:%s", scope, identity)
}

// Allow atomically increments the counter and reports whether the request
// fits the window budget. When Redis is unreachable the limiter fails open:
// the primary feature is never blocked by a secondary dependency.
func (r *RateLimiter) Allow(ctx context.Context, key string) bool {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		r.log.Warn("rate limit store unavailable, failing open", zap.String("key", key), zap.Error(err))
		return true
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			r.log.Warn("failed to set rate limit window", zap.String("key", key), zap.Error(err))
		}
	}

	return count <= r.budget
}

// RetryAfter is the wait clients are told to observe after a rejection.
func (r *RateLimiter) RetryAfter() time.Duration {
	return r.window
}
