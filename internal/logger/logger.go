// Package logger provides structured logging utilities for the application.
// It wraps log/slog with JSON formatting, context-based request IDs, and
// optional Better Stack log shipping.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogbetterstack "github.com/samber/slog-betterstack"
)

// Logger is the application logger
type Logger struct {
	*slog.Logger
}

// ShippingOptions configures optional remote log shipping.
type ShippingOptions struct {
	// BetterStackToken enables shipping when non-empty.
	BetterStackToken string
	// BetterStackEndpoint is the ingesting endpoint URL.
	BetterStackEndpoint string
}

// New creates a new logger instance with JSON formatting
func New(level string) *Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a new logger instance with JSON formatting writing to the provided writer
func NewWithWriter(level string, w io.Writer) *Logger {
	handler := newJSONHandler(level, w)
	return &Logger{Logger: slog.New(NewContextHandler(handler))}
}

// NewWithShipping creates a logger that writes JSON to stdout and, when a
// Better Stack token is configured, additionally ships records through an
// async pipeline so remote delivery never blocks request handling.
func NewWithShipping(level string, opts ShippingOptions) *Logger {
	stdout := newJSONHandler(level, os.Stdout)
	if opts.BetterStackToken == "" {
		return &Logger{Logger: slog.New(NewContextHandler(stdout))}
	}

	remote := slogbetterstack.Option{
		Level:    parseLevel(level),
		Token:    opts.BetterStackToken,
		Endpoint: opts.BetterStackEndpoint,
	}.NewBetterstackHandler()

	combined := NewMultiHandler(stdout, NewAsyncHandler(remote, AsyncOptions{}))
	return &Logger{Logger: slog.New(NewContextHandler(combined))}
}

func newJSONHandler(level string, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			if a.Key == slog.LevelKey {
				a.Key = "level"
				level := a.Value.String()
				if level == "WARN" {
					level = "warning"
				} else {
					level = strings.ToLower(level)
				}
				a.Value = slog.StringValue(level)
			}
			if a.Key == slog.MessageKey {
				a.Key = "message"
			}
			return a
		},
	}
	return slog.NewJSONHandler(w, opts)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithModule creates a new entry with module field
func (l *Logger) WithModule(module string) *Logger {
	return &Logger{Logger: l.With("module", module)}
}

// WithRequestID creates a new entry with request ID field
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.With("request_id", requestID)}
}

// WithError creates a new entry with error field
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.With("error", err)}
}

// WithField creates a new entry with a single field
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{Logger: l.With(key, value)}
}

// WithFields creates a new entry with multiple fields
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{Logger: l.With(args...)}
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted message at warn level.
func (l *Logger) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

// Fatal logs a message at error level and exits the process.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Error(msg, args...)
	os.Exit(1)
}
