// Package show prints a generated grid.
package show

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"tableflip.dev/heatgrid/pkg/config"
	"tableflip.dev/heatgrid/pkg/printers"
)

// Output formats besides the default terminal rendering.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Show generates one grid from Config and prints it.
type Show struct {
	Config *config.Config
	// Format is empty for the terminal grid, or FormatJSON / FormatYAML.
	Format string
	Out    io.Writer
	Logger *slog.Logger
}

// Do renders the grid to Out, or stdout when Out is nil.
func (s *Show) Do(_ context.Context) error {
	out := s.Out
	if out == nil {
		out = color.Output
	}
	svc := s.Config.NewService(s.Logger)
	snap := svc.Snapshot()

	switch s.Format {
	case FormatJSON:
		return printers.WriteJSON(out, printers.NewDocument(snap, svc.Mode()))
	case FormatYAML:
		return printers.WriteYAML(out, printers.NewDocument(snap, svc.Mode()))
	case "":
	default:
		return fmt.Errorf("show: unknown output format %q", s.Format)
	}

	p := printers.NewGridPrinter(out, s.Config.Dark, s.Config.WeekStart)
	p.Grid(snap)
	_, _ = fmt.Fprintln(out)
	p.Summary(snap, svc.Mode())
	return nil
}
