package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/mark3labs/raindrop/internal/config"
)

// newLogger returns the logger for a command. Logging is off unless debug is
// enabled; the interactive widget owns the terminal, so it logs to path, and
// an empty path sends logs to stderr instead.
func newLogger(cfg config.Config, path string) (*log.Logger, func(), error) {
	if !cfg.Debug {
		return log.New(io.Discard), func() {}, nil
	}

	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		Prefix:          "raindrop",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
