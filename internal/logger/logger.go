// Package logger provides the process-wide structured logger.
//
// It wraps log/slog behind package-level functions so call sites stay short
// and the output format can be reconfigured at startup from the logging
// section of the configuration file.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Config holds logger configuration.
type Config struct {
	Level  string `mapstructure:"level" yaml:"level"`   // DEBUG, INFO, WARN, ERROR
	Format string `mapstructure:"format" yaml:"format"` // text, json
	Output string `mapstructure:"output" yaml:"output"` // stdout, stderr, or file path
}

var (
	mu      sync.RWMutex
	slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	closer  io.Closer
)

// Initialize reconfigures the package logger from config. Call once at
// startup, before anything logs concurrently.
func Initialize(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	var level slog.Level
	switch strings.ToUpper(config.Level) {
	case "DEBUG":
		level = slog.LevelDebug
	case "", "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level: %s", config.Level)
	}

	var output io.Writer
	switch config.Output {
	case "", "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		f, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		if closer != nil {
			_ = closer.Close()
		}
		closer = f
		output = f
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(config.Format) {
	case "", "text":
		slogger = slog.New(slog.NewTextHandler(output, opts))
	case "json":
		slogger = slog.New(slog.NewJSONHandler(output, opts))
	default:
		return fmt.Errorf("unknown log format: %s", config.Format)
	}

	return nil
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return slogger
}

// Debug logs at debug level with alternating key/value pairs.
func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}

// Info logs at info level with alternating key/value pairs.
func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

// Warn logs at warn level with alternating key/value pairs.
func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

// Error logs at error level with alternating key/value pairs.
func Error(msg string, args ...any) {
	current().Error(msg, args...)
}
