package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vitrine/config"
	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output to slog. Statements run inside a request
// are logged through that request's logger so they carry its request id.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		base:          base,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, msg, args...)
}

var slogLevels = map[logger.LogLevel]slog.Level{
	logger.Info:  slog.LevelInfo,
	logger.Warn:  slog.LevelWarn,
	logger.Error: slog.LevelError,
}

func (l *gormSlogLogger) printf(ctx context.Context, level logger.LogLevel, msg string, args ...any) {
	if l.level < level || l.base == nil {
		return
	}

	l.from(ctx).Log(ctx, slogLevels[level], "GORM "+fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

// Trace logs failed statements, slow statements, and in debug mode every statement.
// A missing row is an expected outcome of lookups and is not logged.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn

	var (
		level slog.Level
		msg   string
	)
	switch {
	case failed:
		level, msg = slog.LevelError, "GORM query failed"
	case slow:
		level, msg = slog.LevelWarn, "GORM slow query"
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "GORM query"
	default:
		return
	}

	statement, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.String("sql", statement),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if failed {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}
