// Package hover runs the canvas hit-tester at one pixel position.
package hover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"tableflip.dev/heatgrid/pkg/config"
	"tableflip.dev/heatgrid/pkg/runner/export"
)

// ErrNoCell is returned when the position is outside every cell.
var ErrNoCell = errors.New("hover: no cell at position")

// Hover renders a grid from Config and reports the cell under (X, Y).
type Hover struct {
	Config *config.Config
	X, Y   int
	Out    io.Writer
	Logger *slog.Logger
}

// Do prints the tooltip for the hovered cell.
func (h *Hover) Do(_ context.Context) error {
	out := h.Out
	if out == nil {
		out = color.Output
	}
	svc := h.Config.NewService(h.Logger)
	r := export.NewRenderer(svc.Snapshot(), export.Settings{
		Geometry:  h.Config.Geometry,
		WeekStart: h.Config.WeekStart,
		Dark:      h.Config.Dark,
		Logger:    h.Logger,
	})
	defer r.Close()

	tip, ok := r.Hover(h.X, h.Y)
	if !ok {
		return fmt.Errorf("%w (%d, %d)", ErrNoCell, h.X, h.Y)
	}
	faint := color.New(color.Faint)
	_, _ = faint.Fprintf(out, "row %d, col %d: ", tip.Row, tip.Col)
	_, _ = fmt.Fprintln(out, tip.String())
	return nil
}
