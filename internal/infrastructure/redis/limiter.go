package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/printmart/internal/pkg/ratelimit"
)

// Limiter is a fixed one-minute window counter shared by every instance
// pointing at the same Redis
type Limiter struct {
	client    redis.Cmdable
	perMinute int
	now       func() time.Time
}

// NewLimiter creates a Redis backed rate limiter
func NewLimiter(client redis.Cmdable, perMinute int) *Limiter {
	return &Limiter{
		client:    client,
		perMinute: perMinute,
		now:       time.Now,
	}
}

// Allow counts one request for key. On Redis errors the request is allowed
// and the error returned for logging.
func (l *Limiter) Allow(ctx context.Context, key string) (ratelimit.Decision, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	redisKey := fmt.Sprintf("rate_limit:%s", key)
	decision := ratelimit.Decision{
		Allowed: true,
		Limit:   l.perMinute,
		ResetAt: l.now().Add(time.Minute),
	}

	current, err := l.client.Get(ctx, redisKey).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return decision, fmt.Errorf("failed to read rate limit counter: %w", err)
	}

	if current >= l.perMinute {
		decision.Allowed = false
		return decision, nil
	}

	pipe := l.client.Pipeline()
	pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		decision.Remaining = l.perMinute - current - 1
		return decision, fmt.Errorf("failed to update rate limit counter: %w", err)
	}

	decision.Remaining = l.perMinute - current - 1
	return decision, nil
}
