// cmd/common.go
package cmd

import (
	"log/slog"
	"os"
)

// ConfigureLogger sets up slog the way idefix/cmd/common.go did: text by
// default, JSON on request, level raised by -v, and installed as the
// process default so every package logs through the same handler.
func ConfigureLogger(verbose, jsonFormat bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
