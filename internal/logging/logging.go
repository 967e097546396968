// Package logging configures the process-wide slog logger for the template.
package logging

import (
	"io"
	"log/slog"
)

// Setup installs a text logger writing to w as the slog default and returns
// it. Debug lowers the level from info to debug.
func Setup(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
