package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const rateLimitKeyFmt = "ratelimit:%s:%s"

type RateLimitConfig struct {
	// Scope namespaces the counters, e.g. "public".
	Scope  string
	Limit  int
	Window time.Duration
}

type RateLimiterOpts struct {
	TimeProvider func() time.Time
	UuidProvider func() uuid.UUID
}

type rateLimiterMiddleware struct {
	logger       *logrus.Logger
	redis        *redis.Client
	config       RateLimitConfig
	timeProvider func() time.Time
	uuidProvider func() uuid.UUID
}

// NewRateLimiterMiddleware enforces a sliding window of config.Limit requests
// per client IP. Redis failures let the request through.
func NewRateLimiterMiddleware(
	logger *logrus.Logger,
	redisClient *redis.Client,
	config RateLimitConfig,
	opts *RateLimiterOpts,
) Middleware {
	m := &rateLimiterMiddleware{
		logger:       logger,
		redis:        redisClient,
		config:       config,
		timeProvider: time.Now,
		uuidProvider: uuid.New,
	}
	if opts != nil && opts.TimeProvider != nil {
		m.timeProvider = opts.TimeProvider
	}
	if opts != nil && opts.UuidProvider != nil {
		m.uuidProvider = opts.UuidProvider
	}
	return m
}

func (m *rateLimiterMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.config.Limit <= 0 || m.config.Window <= 0 {
			return c.Next()
		}

		ctx := c.UserContext()
		key := fmt.Sprintf(rateLimitKeyFmt, m.config.Scope, c.IP())
		now := m.timeProvider()
		windowStart := now.Add(-m.config.Window).Unix()

		currentCount, err := m.redis.ZCount(ctx, key,
			strconv.FormatInt(windowStart, 10),
			strconv.FormatInt(now.Unix(), 10)).Result()
		if err != nil {
			m.logger.WithError(err).WithField("key", key).Warn("rate limit lookup failed")
			return c.Next()
		}

		resetTime := now.Add(m.config.Window)
		remaining := int64(m.config.Limit) - currentCount
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(m.config.Limit))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if currentCount >= int64(m.config.Limit) {
			retryAfter := strconv.Itoa(int(m.config.Window.Seconds()))
			c.Set(fiber.HeaderRetryAfter, retryAfter)
			m.logger.WithFields(logrus.Fields{
				"ip":    c.IP(),
				"count": currentCount,
				"limit": m.config.Limit,
			}).Warn("rate limit exceeded")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": fmt.Sprintf("rate limit exceeded, retry after %s seconds", retryAfter),
			})
		}

		requestID := fmt.Sprintf("%d:%s", now.Unix(), m.uuidProvider().String())
		pipe := m.redis.TxPipeline()
		pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
		pipe.ZAdd(ctx, key, &redis.Z{
			Score:  float64(now.Unix()),
			Member: requestID,
		})
		pipe.Expire(ctx, key, m.config.Window)
		if _, err := pipe.Exec(ctx); err != nil {
			m.logger.WithError(err).WithField("key", key).Warn("failed to record request for rate limiting")
		}

		return c.Next()
	}
}
