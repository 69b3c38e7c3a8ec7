// Package logging constructs the server's slog loggers.
//
// stdout is reserved for the MCP protocol, so the default writer is stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// silentLevel sits above every standard level so nothing passes the filter.
const silentLevel = slog.Level(100)

// New creates a text-format logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewStderr creates the standard server logger.
func NewStderr(level slog.Level) *slog.Logger {
	return New(os.Stderr, level)
}

// NewDiscard creates a logger that drops all output. Useful for tests.
func NewDiscard() *slog.Logger {
	return New(io.Discard, silentLevel)
}

// LevelFromString converts a verbosity string to a slog.Level.
// Supports: silent, error, warn, info, debug (case-insensitive).
// Unrecognized strings fall back to info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case "silent":
		return silentLevel
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a supported verbosity.
func ValidLevel(s string) bool {
	switch strings.ToLower(s) {
	case "silent", "error", "warn", "warning", "info", "debug":
		return true
	}
	return false
}
