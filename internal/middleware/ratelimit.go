package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	apierrors "github.com/yukikurage/contest-tracker/internal/errors"
	"github.com/yukikurage/contest-tracker/internal/metrics"
)

// CheckRateLimit counts a hit for resource/id in a fixed window.
// Returns true if allowed, false if limit exceeded.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	if rdb == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if cnt == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return cnt <= int64(limit), nil
}

// RateLimit enforces limit requests per window for each client IP.
// When Redis is unavailable the request is let through.
func RateLimit(rdb *redis.Client, resource string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		allowed, err := CheckRateLimit(ctx, rdb, resource, "ip:"+c.ClientIP(), limit, window)
		if err != nil {
			metrics.RedisErrorsTotal.WithLabelValues("rate_limit").Inc()
			slog.WarnContext(ctx, "rate limit check failed, allowing request", "resource", resource, "error", err)
			c.Next()
			return
		}

		if !allowed {
			metrics.RateLimitRejectionsTotal.WithLabelValues(resource).Inc()
			apierrors.TooManyRequests(c, "")
			return
		}
		c.Next()
	}
}
