package client

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logLevels = map[string]log.Level{
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
}

// NewLogger creates a logger writing to w. Unknown levels fall back to warn.
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true})
	lvl, ok := logLevels[level]
	if !ok {
		lvl = log.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// OpenLog returns the log destination for the UI settings: the configured
// log file opened for appending, or stderr.
func (ui UISettings) OpenLog() (io.Writer, func() error, error) {
	if ui.LogFile == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(ui.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}
