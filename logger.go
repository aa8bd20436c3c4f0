package grapevec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with grapevec-specific helpers so events use
// consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler on stderr at info level is used.
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

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithPartition tags every record with a partition (fragment) id.
func (l *Logger) WithPartition(fid int) *Logger {
	return &Logger{
		Logger: l.Logger.With("fid", fid),
	}
}

// LogGrowth logs a reallocation of vector storage.
func (l *Logger) LogGrowth(ctx context.Context, oldCap, newCap int, generation uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "vector growth failed",
			"old_capacity", oldCap,
			"new_capacity", newCap,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "vector grown",
		"old_capacity", oldCap,
		"new_capacity", newCap,
		"generation", generation,
	)
}

// LogRelease logs the release of vector storage.
func (l *Logger) LogRelease(ctx context.Context, capacity, bytes int) {
	l.DebugContext(ctx, "vector released",
		"capacity", capacity,
		"bytes", bytes,
	)
}

// LogInit logs the parameters an algorithm context was initialized with.
func (l *Logger) LogInit(ctx context.Context, algorithm string, attrs ...any) {
	l.InfoContext(ctx, "context initialized", append([]any{"algorithm", algorithm}, attrs...)...)
}

// LogOutput logs the result of writing one partition's output. Failures are
// logged at error level; the caller decides whether to continue.
func (l *Logger) LogOutput(ctx context.Context, path string, lines int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "output failed",
			"path", path,
			"lines_written", lines,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "output written",
		"path", path,
		"lines", lines,
	)
}
