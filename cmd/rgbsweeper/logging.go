package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// parseLogLevel parses a --log-level value.
func parseLogLevel(s string) (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return lvl, nil
}

// newLogger creates a logger writing to w at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	lvl, err := parseLogLevel(flagLogLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openLogFile opens the --log-file for appending. The alt screen owns the
// terminal while a game runs, so logs cannot go to stderr.
// If the file cannot be opened, logging is discarded.
func openLogFile() (*log.Logger, func()) {
	path := flagLogFile
	if path == "" {
		return newLogger(io.Discard, "rgbsweeper"), func() {}
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			return newLogger(io.Discard, "rgbsweeper"), func() {}
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard, "rgbsweeper"), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard, "rgbsweeper"), func() {}
	}

	//nolint:errcheck // Best-effort close on exit
	return newLogger(f, "rgbsweeper"), func() { f.Close() }
}
