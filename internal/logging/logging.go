// Package logging builds the colorized slog loggers used by the riot binary.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Level is a structured log level.
type Level slog.Level

const (
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// ParseLevel converts a textual log level into a Level. Unknown values map
// to LevelInfo.
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) String() string { return slog.Level(l).String() }

// NewLogger returns a tint-backed logger writing to w (stderr when nil).
func NewLogger(w io.Writer, level Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.Level(level),
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}))
}

// isTerminal reports whether w is a character device. Colors are only
// emitted there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
