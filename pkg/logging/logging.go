// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"

	"github.com/gogpu/gg"
)

// New returns a text logger on w. Quiet runs only surface warnings.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Install makes l the default logger and routes the rasterizer's internal
// logging through it.
func Install(l *slog.Logger) {
	slog.SetDefault(l)
	gg.SetLogger(l)
}
