package hypergo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/hypergo/hyper"
)

// Logger wraps slog.Logger with hypergo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPath adds an element path field to the logger.
func (l *Logger) WithPath(id hyper.Path) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", id.String()),
	}
}

// WithKind adds an element kind field to the logger.
func (l *Logger) WithKind(kind hyper.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAdd logs an element insertion.
func (l *Logger) LogAdd(kind hyper.Kind, id hyper.Path, err error) {
	if err != nil {
		l.Warn("add failed",
			"kind", kind.String(),
			"error", err,
		)
	} else {
		l.Debug("add completed",
			"kind", kind.String(),
			"path", id.String(),
		)
	}
}

// LogRemove logs an element removal.
func (l *Logger) LogRemove(id hyper.Path, err error) {
	if err != nil {
		l.Warn("remove failed",
			"path", id.String(),
			"error", err,
		)
	} else {
		l.Debug("remove completed",
			"path", id.String(),
		)
	}
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, op string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"op", op,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot completed",
			"op", op,
		)
	}
}
