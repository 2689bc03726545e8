package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SlowQueryThreshold marks queries logged at warn level.
const SlowQueryThreshold = 200 * time.Millisecond

// Logger sends gorm's output to the default slog logger.
type Logger struct {
	level logger.LogLevel
}

func NewLogger() *Logger {
	return &Logger{level: logger.Warn}
}

func (l *Logger) LogMode(level logger.LogLevel) logger.Interface {
	return &Logger{level: level}
}

func (l *Logger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		slog.InfoContext(ctx, fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		slog.WarnContext(ctx, fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

func (l *Logger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		slog.ErrorContext(ctx, fmt.Sprintf(msg, args...), "component", "gorm")
	}
}

// Trace logs failed and slow statements. Missing rows are an expected outcome
// of lookups and are not logged.
func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		slog.ErrorContext(ctx, "query failed",
			"component", "gorm",
			"sql", sql,
			"rows", rows,
			"duration_ms", elapsed.Milliseconds(),
			"error", err)
	case elapsed > SlowQueryThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		slog.WarnContext(ctx, "slow query",
			"component", "gorm",
			"sql", sql,
			"rows", rows,
			"duration_ms", elapsed.Milliseconds())
	case l.level >= logger.Info:
		sql, rows := fc()
		slog.DebugContext(ctx, "query",
			"component", "gorm",
			"sql", sql,
			"rows", rows,
			"duration_ms", elapsed.Milliseconds())
	}
}
