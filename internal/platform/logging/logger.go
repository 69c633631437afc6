// Package logging provides structured logging built on log/slog, with
// secret redaction, an optional pretty terminal handler, and optional
// rolling file output.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charm "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace is a custom level below slog.LevelDebug for very chatty
// diagnostics such as per-request wire details.
const LevelTrace = slog.Level(-8)

// Config holds logging configuration.
type Config struct {
	Level   string // trace, debug, info, warn, error
	Format  string // json, text, pretty
	Service string // service name added to every record
	Version string // service version added to every record
	File    FileConfig
}

// FileConfig holds rolling log file settings.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a configured slog.Logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a configured slog.Logger with a custom terminal
// writer. Secret redaction is always on. When file output is enabled,
// records are fanned out to both the terminal handler and a JSON handler
// writing to a size-rotated file.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: NewReplaceAttr(),
	}

	var term slog.Handler

	switch strings.ToLower(cfg.Format) {
	case "text":
		term = slog.NewTextHandler(w, opts)
	case "pretty":
		term = charm.NewWithOptions(w, charm.Options{
			ReportTimestamp: true,
			Level:           slogToCharmLevel(level),
		})
	default:
		term = slog.NewJSONHandler(w, opts)
	}

	handler := term

	if cfg.File.Enabled {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}
		// File output is always JSON regardless of terminal format.
		handler = NewMultiHandler(term, slog.NewJSONHandler(rotated, opts))
	}

	return slog.New(handler).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)
}

// parseLevel converts a string log level to slog.Level.
// Unknown levels default to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// slogToCharmLevel maps slog levels onto charmbracelet/log levels.
// Trace folds into debug since charm has no level below it.
func slogToCharmLevel(level slog.Level) charm.Level {
	switch {
	case level <= slog.LevelDebug:
		return charm.DebugLevel
	case level < slog.LevelWarn:
		return charm.InfoLevel
	case level < slog.LevelError:
		return charm.WarnLevel
	default:
		return charm.ErrorLevel
	}
}
