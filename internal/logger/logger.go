// Package logger builds the bullets loggers used across boolco.
//
// Usage:
//
//	log := logger.NewLogger("debug")
//	log.Debug("GET /api/game")
//
//	silentLog := logger.NoLogger() // tests and --quiet style callers
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sgaunet/bullets"
)

// ParseLevel maps a level name to a bullets level.
// Unknown or empty names fall back to info.
func ParseLevel(logLevel string) bullets.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return bullets.DebugLevel
	case "warn", "warning":
		return bullets.WarnLevel
	case "error":
		return bullets.ErrorLevel
	default:
		return bullets.InfoLevel
	}
}

// NewLogger creates a logger that writes to stdout at the given level.
func NewLogger(logLevel string) *bullets.Logger {
	return NewLoggerTo(os.Stdout, logLevel)
}

// NewLoggerTo creates a logger writing to w at the given level.
func NewLoggerTo(w io.Writer, logLevel string) *bullets.Logger {
	l := bullets.New(w)
	l.SetLevel(ParseLevel(logLevel))
	return l
}

// NoLogger creates a logger that suppresses everything below fatal.
func NoLogger() *bullets.Logger {
	l := bullets.New(io.Discard)
	l.SetLevel(bullets.FatalLevel)
	return l
}
