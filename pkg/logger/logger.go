package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
)

type Options struct {
	Writer io.Writer
	Level  string
	// JSON switches to machine-readable output; otherwise tint renders colored text.
	JSON bool
}

var current atomic.Pointer[slog.Logger]

func init() {
	Setup(Options{Level: os.Getenv("LOG_LEVEL"), JSON: os.Getenv("ENVIRONMENT") == "production"})
}

// Setup replaces the process-wide logger. Called once from main after config load.
func Setup(opts Options) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	level := ParseLevel(opts.Level)

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Writer, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(opts.Writer, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		})
	}

	l := slog.New(handler)
	current.Store(l)
	slog.SetDefault(l)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// L exposes the underlying structured logger.
func L() *slog.Logger {
	return current.Load()
}

// With returns a child logger carrying the given key/value pairs.
func With(args ...any) *slog.Logger {
	return L().With(args...)
}

func Info(format string, v ...interface{}) {
	logf(slog.LevelInfo, format, v...)
}

func Warn(format string, v ...interface{}) {
	logf(slog.LevelWarn, format, v...)
}

func Error(format string, v ...interface{}) {
	logf(slog.LevelError, format, v...)
}

func Debug(format string, v ...interface{}) {
	logf(slog.LevelDebug, format, v...)
}

// Fatal logs at error level and exits the process.
func Fatal(format string, v ...interface{}) {
	logf(slog.LevelError, format, v...)
	os.Exit(1)
}

func logf(level slog.Level, format string, v ...interface{}) {
	l := L()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, v...))
}
