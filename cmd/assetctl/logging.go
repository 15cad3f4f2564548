package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Log level mapping
var logLevelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// parseLogLevel maps a level name to a slog level, defaulting to WARN
func parseLogLevel(name string) slog.Level {
	level, ok := logLevelMap[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return slog.LevelWarn
	}
	return level
}

// newRunLogger creates the logger of one store session. Every line carries
// the run id so interleaved sessions can be told apart.
func newRunLogger(w io.Writer, levelName string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(levelName),
	})
	return slog.New(handler).With("run_id", uuid.NewString())
}
