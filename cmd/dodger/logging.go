package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger creates the session logger.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodger",
		Level:           lvl,
	})
	return logger, nil
}

// openLogOutput picks where logs go. The terminal renderer owns the screen,
// so without a log file its logs are discarded.
func openLogOutput(renderer, path string) (io.Writer, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		//nolint:errcheck // Best-effort close on exit
		return f, func() { f.Close() }, nil
	}
	if renderer == rendererTUI {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
