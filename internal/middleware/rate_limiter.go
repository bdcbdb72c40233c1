package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultRate is the sustained number of submissions allowed per client
// per second.
const DefaultRate rate.Limit = 10

// RateLimiter limits requests per client IP on the routes it is applied to.
// deny renders the rejection; nil falls back to a plain 429.
func RateLimiter(limit rate.Limit, deny echo.HandlerFunc) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// In-memory store, suitable for single-instance deployments.
		Store: middleware.NewRateLimiterMemoryStore(limit),

		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if deny != nil {
				return deny(c)
			}
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
