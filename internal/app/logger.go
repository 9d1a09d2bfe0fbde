package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated slog.Logger writing to w. level is any name
// slog understands ("debug", "warn", "info+2"...); unknown names fall back to
// info. format "json" selects the JSON handler, anything else text.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
