package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds the application logger. The TUI owns the terminal, so
// logs go to a file; an empty path discards them.
// The returned close function is never nil.
func newLogger(path string, debug bool) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	if path == "" {
		return log.New(io.Discard), noop, nil
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, noop, fmt.Errorf("log: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, noop, fmt.Errorf("log: cannot create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("log: cannot open %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          gameID,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger, f.Close, nil
}
