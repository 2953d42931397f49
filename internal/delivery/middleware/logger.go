package middleware

import (
	"log/slog"
	"time"

	"vitrine/config"
	deliverycontext "vitrine/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AccessLog writes one line per request through the request-scoped logger.
// Successful requests are only logged in debug mode; 4xx and 5xx always are.
type AccessLog struct {
	logger *slog.Logger
	debug  bool
}

func NewAccessLog(logger *slog.Logger, cfg *config.Config) *AccessLog {
	return &AccessLog{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *AccessLog) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}

		m.write(c, start, err)

		return nil
	}
}

func (m *AccessLog) write(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status

	level := slog.LevelDebug
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	case m.debug:
		level = slog.LevelInfo
	}

	attrs := []slog.Attr{
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.Int64("bytes_out", c.Response().Size),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if userID, ok := deliverycontext.GetUserID(req.Context()); ok {
		attrs = append(attrs, slog.String("operator", userID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)
}
