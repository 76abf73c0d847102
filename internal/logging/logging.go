// Package logging provides the structured logger for the fits-to-stamps
// CLI. Logs go to stderr so stdout stays clean for shell pipelines.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a text-format slog.Logger at the given level. Supported
// levels: debug, info, warn, error; anything else falls back to info.
func New(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}
