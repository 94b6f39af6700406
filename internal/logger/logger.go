// SPDX-License-Identifier: EPL-2.0

// Package logger provides the structured logger shared by the wavfx
// packages and command.
//
// It wraps log/slog with a text handler on stderr. The level starts at
// info, can be set with the LOG_LEVEL environment variable (debug, info,
// warn, error) and changed at runtime with SetLevel or SetVerbose.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

var (
	// DefaultLogger is the global structured logger instance.
	DefaultLogger *slog.Logger

	level = new(slog.LevelVar)
)

func init() {
	level.Set(ParseLevel(os.Getenv("LOG_LEVEL")))
	SetOutput(os.Stderr)
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// SetOutput redirects all subsequent log output to w, keeping the level.
func SetOutput(w io.Writer) {
	DefaultLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// SetLevel changes the logging level for all subsequent log operations.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Level reports the current logging level.
func Level() slog.Level {
	return level.Level()
}

// SetVerbose enables debug-level logging when verbose is true, otherwise sets info-level.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(slog.LevelDebug)
	} else {
		SetLevel(slog.LevelInfo)
	}
}

func InfoContext(ctx context.Context, msg string, args ...any) {
	DefaultLogger.InfoContext(ctx, msg, args...)
}

// Debug messages are only output when the level is LevelDebug or lower.
func Debug(msg string, args ...any) {
	DefaultLogger.Debug(msg, args...)
}

func DebugContext(ctx context.Context, msg string, args ...any) {
	DefaultLogger.DebugContext(ctx, msg, args...)
}

func Warn(msg string, args ...any) {
	DefaultLogger.Warn(msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	DefaultLogger.ErrorContext(ctx, msg, args...)
}

// Effect logs the completion of one effect stage at debug level.
func Effect(ctx context.Context, name string, elapsed time.Duration, attrs ...any) {
	allAttrs := make([]any, 0, 4+len(attrs))
	allAttrs = append(allAttrs,
		"effect", name,
		"elapsed", elapsed,
	)
	allAttrs = append(allAttrs, attrs...)
	DebugContext(ctx, "effect applied", allAttrs...)
}
