// Package logging wraps log/slog with the field names used across the
// loading pipeline and the method registry.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger wraps slog.Logger with simspace-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewText creates a Logger writing human-readable text to w.
func NewText(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSON creates a Logger writing JSON records to w.
func NewJSON(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Noop discards all output.
func Noop() *Logger {
	return New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))
}

// WithComponent tags records with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{Logger: l.Logger.With("component", name)}
}

// WithPath tags records with a dataset path.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{Logger: l.Logger.With("path", path)}
}

// WithSpace tags records with a space name.
func (l *Logger) WithSpace(name string) *Logger {
	return &Logger{Logger: l.Logger.With("space", name)}
}

// WithMethod tags records with a method name.
func (l *Logger) WithMethod(name string) *Logger {
	return &Logger{Logger: l.Logger.With("method", name)}
}

var std atomic.Pointer[Logger]

func init() { std.Store(New(nil)) }

// Default returns the process-wide logger used when callers pass none.
func Default() *Logger { return std.Load() }

// SetDefault replaces the process-wide logger. A nil l is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		std.Store(l)
	}
}
