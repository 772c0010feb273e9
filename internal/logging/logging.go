// Package logging provides structured logging with file rotation.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string // Log level: debug, info, warn, error
	Format     string // Handler format: text or json
	FilePath   string // Path to log file (empty = Output)
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Max number of old log files to retain
	MaxAgeDays int    // Max age in days to retain old log files
	Compress   bool   // Whether to compress rotated files

	// Output receives logs when FilePath is empty. Defaults to stderr;
	// stdout is reserved for generated schemas.
	Output io.Writer
}

// DefaultConfig returns sensible defaults for a command line tool.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		Format:     "text",
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 28,
		Compress:   true,
	}
}

// Setup initializes the global slog logger with the given configuration.
// Returns a cleanup function that should be called on shutdown.
func Setup(cfg Config) (func() error, error) {
	logger, cleanup, err := New(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return cleanup, nil
}

// New builds a logger without installing it as the default.
func New(cfg Config) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var writer io.Writer
	var cleanup func() error

	if cfg.FilePath != "" {
		// Ensure directory exists
		dir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}

		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		writer = lj
		cleanup = lj.Close
	} else {
		writer = cfg.Output
		if writer == nil {
			writer = os.Stderr
		}
		cleanup = func() error { return nil }
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler), cleanup, nil
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
