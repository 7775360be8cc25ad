package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the process logger from the log settings. verbose forces
// debug level.
func (l LogConfig) NewLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl, err := parseLevel(l.Level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
