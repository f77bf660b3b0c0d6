package tilescan

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with tilescan-specific context.
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

// WithLayout adds the scan geometry fields to the logger.
func (l *Logger) WithLayout(layout Layout) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			"dim", layout.Dim,
			"tile_size", layout.TileSize,
			"num_tiles", layout.NumTiles,
		),
	}
}

// LogScan logs a completed scan.
func (l *Logger) LogScan(ctx context.Context, tiles int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"tiles_done", tiles,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "scan completed",
			"tiles", tiles,
		)
	}
}
