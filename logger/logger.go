package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	once   sync.Once
)

// Init initializes the global structured logger. ENV=production
// switches to JSON output at Info level for log shippers; anywhere
// else a human-readable text handler at Debug. LOG_LEVEL overrides
// the level either way.
func Init() {
	once.Do(func() {
		production := os.Getenv("ENV") == "production"
		level := resolveLevel(production, os.Getenv("LOG_LEVEL"))

		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		if production {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		} else {
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
}

// resolveLevel picks the log level: explicit override first, then
// Info in production and Debug everywhere else.
func resolveLevel(production bool, override string) slog.Level {
	switch strings.ToLower(override) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if production {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// L returns the global logger instance
func L() *slog.Logger {
	if logger == nil {
		Init()
	}
	return logger
}

// Info is a shorthand for L().Info
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Error is a shorthand for L().Error
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

// Debug is a shorthand for L().Debug
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Warn is a shorthand for L().Warn
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}
