// Package middleware holds echo middleware shared by every HTTP surface.
package middleware

import (
	"log/slog"

	deliverycontext "vitrine/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestScope tags each request with an id and binds a logger carrying it to the request context.
type RequestScope struct {
	logger *slog.Logger
}

func NewRequestScope(logger *slog.Logger) *RequestScope {
	return &RequestScope{logger: logger}
}

// Process reuses a client supplied X-Request-Id when present.
func (m *RequestScope) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		scoped := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
		)

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, scoped)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
