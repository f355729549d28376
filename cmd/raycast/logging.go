package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a leveled logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "raycast",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLogger builds the logger for a command. Output goes to the configured
// log file, or to fallback when none is set. The returned closer releases
// the file.
func openLogger(cfg Config, fallback io.Writer) (*log.Logger, io.Closer, error) {
	w, closer := fallback, io.Closer(nopCloser{})
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger, err := newLogger(w, cfg.LogLevel)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return logger, closer, nil
}
