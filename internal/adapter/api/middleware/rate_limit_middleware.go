package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"findhere/pkg/errors"
	"findhere/pkg/logger"
	"findhere/pkg/response"
)

// Limiter is satisfied by ratelimit.RateLimiter.
type Limiter interface {
	Allow(subject, action string) (bool, time.Duration)
}

// RateLimit throttles action per authenticated user, falling back to the
// client IP for anonymous requests.
func RateLimit(limiter Limiter, action string) echo.MiddlewareFunc {
	return rateLimit(limiter, action, func(c echo.Context) string {
		if uid := UserID(c); uid != "" {
			return uid
		}
		return "ip:" + c.RealIP()
	})
}

// RateLimitByIP throttles action per client IP regardless of authentication.
func RateLimitByIP(limiter Limiter, action string) echo.MiddlewareFunc {
	return rateLimit(limiter, action, func(c echo.Context) string {
		return "ip:" + c.RealIP()
	})
}

func rateLimit(limiter Limiter, action string, key func(echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject := key(c)
			allowed, wait := limiter.Allow(subject, action)
			if !allowed {
				retry := int(wait.Seconds() + 0.5)
				if retry < 1 {
					retry = 1
				}
				logger.Warn("rate limit hit: %s on %s", subject, action)
				c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded", retry))
			}
			return next(c)
		}
	}
}
