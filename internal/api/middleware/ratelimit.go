package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/creatorhub/marketplace-api/internal/api/metrics"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// fallbackCallerID is used when a request carries no forwarding headers at
// all. Direct connections behind the load balancer always carry them, so
// this collapses only truly unidentified traffic into one bucket.
const fallbackCallerID = "127.0.0.1"

// RateLimit enforces the given limit per caller. Callers are identified by
// client IP; rejected requests get a 429 with a Retry-After header equal to
// the window length in seconds.
func RateLimit(limiter ports.RateLimiter, limit ports.Limit) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerID := clientIP(c.Request())

			decision := limiter.Check(c.Request().Context(), limit, callerID)
			if !decision.Allowed {
				metrics.RateLimitDecisionsTotal.WithLabelValues(limit.Prefix, "reject").Inc()
				c.Response().Header().Set("Retry-After",
					strconv.Itoa(int(decision.RetryAfter.Seconds())))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}

			metrics.RateLimitDecisionsTotal.WithLabelValues(limit.Prefix, "admit").Inc()
			return next(c)
		}
	}
}

// clientIP extracts the caller's IP: the first X-Forwarded-For entry when
// present, then X-Real-IP, then fallbackCallerID.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := xff
		if idx := strings.Index(xff, ","); idx >= 0 {
			first = xff[:idx]
		}
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return fallbackCallerID
}
