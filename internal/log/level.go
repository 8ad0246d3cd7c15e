package log

import (
	"log/slog"
	"strings"
)

// Level is the minimum severity a message needs to be emitted.
type Level int

const (
	// LevelDebug includes per-request API traffic.
	LevelDebug Level = iota
	// LevelInfo covers normal lifecycle events.
	LevelInfo
	// LevelWarn flags degraded but recoverable situations.
	LevelWarn
	// LevelError flags failures.
	LevelError
)

// String returns the level's canonical name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ToSlogLevel maps onto the slog constant the handler expects.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel reads a level name case-insensitively. Unknown input falls back
// to warn, the interactive default: command output stays quiet unless asked.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}
