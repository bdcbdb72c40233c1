package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/sosyaltarif/tarifauth/internal/logging"
)

// Logger is a middleware that injects a request-scoped logger into the context.
// This logger is pre-configured with the request ID from the RequestID middleware.
// It should be placed after the RequestID middleware in the chain.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		requestLogger := slog.Default().With("request_id", reqID)
		if id, ok := c.Get(ClientIDKey).(string); ok {
			requestLogger = requestLogger.With("client_id", id)
		}

		ctx := logging.WithLogger(c.Request().Context(), requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
