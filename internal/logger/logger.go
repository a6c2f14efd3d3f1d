package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel keeps normal runs quiet; only the table reaches the terminal.
const DefaultLevel = "warn"

// New creates a text logger writing to w at the given level.
func New(level slog.Level, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q, must be one of: debug, info, warn, error", level)
	}
}
