package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// setupLogging installs the default logger: human-readable on a terminal,
// JSON when output is redirected. Verbose mode lowers the level to Debug,
// which includes every pointer sample and command call.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
