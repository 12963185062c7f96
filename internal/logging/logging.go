// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a logger writing timestamped records to both stderr and the
// given log file, plus a closer for the file handle. Results and reports go
// to stdout; the log stream stays out of their way.
func New(logPath string) (*slog.Logger, func() error, error) {
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stderr, file), nil)
	return slog.New(handler), file.Close, nil
}
