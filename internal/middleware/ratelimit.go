// Package middleware provides structured logging, Prometheus metrics, and
// Redis-backed rate limiting for the HTTP layer.
package middleware

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimit returns a fixed-window limiter allowing `limit` requests per
// `window` for a resource. Requests are keyed by the authenticated user when
// one is set in locals, otherwise by client IP. When Redis is unavailable the
// limiter fails open so the API keeps serving.
//
// Limiting is skipped entirely under APP_ENV test/development so local
// workflows are never throttled.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, name ...string) fiber.Handler {
	resource := ""
	if len(name) > 0 {
		resource = name[0]
	}

	return func(c *fiber.Ctx) error {
		if rateLimitDisabled() || rdb == nil {
			return c.Next()
		}

		res := resource
		if res == "" {
			res = c.Path()
		}

		allowed, err := allowRequest(c.Context(), rdb, res, requesterID(c), limit, window)
		if err != nil {
			Logger.WarnContext(c.UserContext(), "rate limiter unavailable, failing open",
				"resource", res, "error", err.Error())
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}

func rateLimitDisabled() bool {
	switch strings.TrimSpace(os.Getenv("APP_ENV")) {
	case "", "test", "development":
		return true
	}
	return false
}

// requesterID identifies the caller for limiter bucketing.
func requesterID(c *fiber.Ctx) string {
	if uid := c.Locals("userID"); uid != nil {
		return fmt.Sprintf("user:%v", uid)
	}
	return "ip:" + c.IP()
}

// allowRequest counts the request against its window bucket. The first hit on
// a fresh bucket sets the expiry; the counter never needs cleanup beyond that.
func allowRequest(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf("rl:%s:%s", resource, id)

	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		rdb.Expire(ctx, key, window)
	}
	return count <= int64(limit), nil
}
