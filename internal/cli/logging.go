package cli

import (
	"io"
	"log/slog"
)

// newLogger returns the text logger handed to the harness. Only warnings
// (rejected patterns) are shown unless --verbose is set.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
