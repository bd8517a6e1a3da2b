package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AttemptLimiter abstracts the fixed-window counter backing login throttling.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// RateLimit throttles requests per client IP. On limiter errors the request
// is let through: throttling is a hardening measure, not a dependency.
func RateLimit(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			ok, retryAfter, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				secs := int(retryAfter.Seconds())
				if secs < 1 {
					secs = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again shortly")
			}
			return next(c)
		}
	}
}
