// Package logs builds the structured logger used by the command-line tool.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
)

// Options selects the log level and destinations.
type Options struct {
	Level   string // debug, info, warn, error
	File    string // optional file, written as JSON lines
	Verbose bool   // forces debug level
}

// New builds a logger that writes human-readable lines to w and, when a
// file is configured, JSON lines to the file. Every record carries a
// run_id attribute so the records of one invocation can be grepped out
// of a shared file. The returned func closes the file and must be
// called before exit.
func New(w io.Writer, opts Options) (*slog.Logger, func(), error) {
	level := new(slog.LevelVar)
	level.Set(parseLevel(opts.Level))
	if opts.Verbose {
		level.Set(slog.LevelDebug)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}

	closeFile := func() {}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closeFile = func() { _ = f.Close() }
	}

	logger := slog.New(slogmulti.Fanout(handlers...)).With(
		slog.String("run_id", uuid.New().String()),
	)
	return logger, closeFile, nil
}

// parseLevel maps a config string to a slog level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
