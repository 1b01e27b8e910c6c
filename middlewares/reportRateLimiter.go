package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Counter is the slice of the Redis API the limiter uses. Tests provide
// an in-memory implementation.
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}

type redisCounter struct {
	client *redis.Client
}

func (r redisCounter) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

func (r redisCounter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Expire(ctx, key, ttl).Err()
}

func (r redisCounter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

// NewRedisCounter wraps a Redis client as a Counter.
func NewRedisCounter(client *redis.Client) Counter {
	return redisCounter{client: client}
}

// ReportRateLimiter caps report submissions per actor per day using an
// INCR counter with a 24h TTL set on the first increment. Runs after
// AuthMiddleware.
func ReportRateLimiter(counter Counter, prefix string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := ActorEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		userKey := prefix + ":" + email

		count, err := counter.Incr(ctx, userKey)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		if count == 1 {
			if err := counter.Expire(ctx, userKey, 24*time.Hour); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := counter.TTL(ctx, userKey)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
