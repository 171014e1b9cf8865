// Package logging builds the game's structured logger.
// The terminal belongs to the renderer while the game runs, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a logger writing to w at the named level
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "paddleball",
		Level:           lvl,
	}), nil
}

// OpenFile opens path for appending log lines
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// WithSession tags every line of a run with a fresh session id
func WithSession(logger *log.Logger) *log.Logger {
	return logger.With("session", uuid.NewString())
}
