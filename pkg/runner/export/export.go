// Package export writes the grid as a PNG image.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/heatgrid/pkg/app"
	"tableflip.dev/heatgrid/pkg/canvas"
	"tableflip.dev/heatgrid/pkg/config"
	"tableflip.dev/heatgrid/pkg/grid"
)

// Export generates a grid from Config and saves it to Path.
type Export struct {
	Config *config.Config
	// Path overrides Config.ExportPath when set.
	Path   string
	Out    io.Writer
	Logger *slog.Logger
}

// Do renders and saves the image, then prints where it went.
func (e *Export) Do(_ context.Context) error {
	out := e.Out
	if out == nil {
		out = color.Output
	}
	path := e.Path
	if path == "" {
		path = e.Config.ExportPath
	}
	svc := e.Config.NewService(e.Logger)
	if err := Save(svc.Snapshot(), Settings{
		Geometry:  e.Config.Geometry,
		WeekStart: e.Config.WeekStart,
		Dark:      e.Config.Dark,
		Logger:    e.Logger,
	}, path); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, path)
	return nil
}

// Settings control how a snapshot is drawn.
type Settings struct {
	Geometry  canvas.Geometry
	WeekStart time.Weekday
	Dark      bool
	Logger    *slog.Logger
}

// NewRenderer draws snap onto a fresh canvas.
func NewRenderer(snap *app.Snapshot, s Settings) *canvas.Renderer {
	return canvas.New(snap.Matrix, snap.Spans, canvas.Options{
		Geometry:  s.Geometry,
		Dark:      s.Dark,
		DayLabels: grid.WeekdayLabels(s.WeekStart),
		Logger:    s.Logger,
	})
}

// Save draws snap and writes it to path as PNG.
func Save(snap *app.Snapshot, s Settings, path string) error {
	r := NewRenderer(snap, s)
	defer r.Close()
	return r.SavePNG(path)
}
