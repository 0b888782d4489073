package canvas

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"tableflip.dev/heatgrid/pkg/grid"
	"tableflip.dev/heatgrid/pkg/group"
	"tableflip.dev/heatgrid/pkg/palette"
)

// Options configure a Renderer.
type Options struct {
	Geometry Geometry
	Dark     bool
	// DayLabels are drawn next to rows 0..6; empty strings are skipped.
	DayLabels [grid.DaysPerWeek]string
	Logger    *slog.Logger
}

// Tooltip describes the hovered cell.
type Tooltip struct {
	Row, Col  int
	Date      string
	Intensity int
}

// TooltipFor describes c at (row, col).
func TooltipFor(row, col int, c *grid.Cell) Tooltip {
	return Tooltip{Row: row, Col: col, Date: c.Day(), Intensity: c.Intensity}
}

func (t Tooltip) String() string {
	d := t.Date
	if d == "" {
		d = "N/A"
	}
	return fmt.Sprintf("Date: %s, Contributions: %d", d, t.Intensity)
}

type point struct{ row, col int }

// Renderer owns a pixel surface for one matrix. Pointer handling is done by
// a single Hover call per pointer event, which redraws at most two cells.
type Renderer struct {
	opts   Options
	m      *grid.Matrix
	spans  []group.Span
	dc     *gg.Context
	hover  *point
	redraw int
}

// New creates a renderer for m and paints it once.
func New(m *grid.Matrix, spans []group.Span, opts Options) *Renderer {
	if opts.Geometry == (Geometry{}) {
		opts.Geometry = DefaultGeometry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	r := &Renderer{opts: opts}
	r.Reset(m, spans)
	return r
}

// Reset binds a freshly generated matrix and repaints everything. Hover
// state from the previous matrix is dropped.
func (r *Renderer) Reset(m *grid.Matrix, spans []group.Span) {
	r.m = m
	r.spans = spans
	r.hover = nil
	w, h := r.opts.Geometry.Size(m.Rows(), m.Cols())
	if r.dc == nil || r.dc.Width() != w || r.dc.Height() != h {
		r.dc = gg.NewContext(w, h)
	}
	r.Draw()
}

// SetDark switches palettes and repaints. The matrix is not touched.
func (r *Renderer) SetDark(dark bool) {
	if r.opts.Dark == dark {
		return
	}
	r.opts.Dark = dark
	r.Draw()
}

// Draw repaints the whole surface.
func (r *Renderer) Draw() {
	dark := r.opts.Dark
	r.dc.ClearWithColor(gg.Hex(palette.BackgroundHex(dark)))

	text := palette.ToRGBA(palette.LabelHex(dark))
	geo := r.opts.Geometry
	for _, s := range r.spans {
		// A one-week month has no room for its label.
		if s.Span < 2 {
			continue
		}
		writeLabel(r.dc, geo.X(s.Col), geo.Top-geo.Padding-3, s.Label, text)
	}
	for row, l := range r.opts.DayLabels {
		if l == "" || row >= r.m.Rows() {
			continue
		}
		y := geo.Y(row) + (geo.CellSize+labelHeight)/2
		writeLabel(r.dc, 2, y, l, text)
	}

	r.m.Each(func(row, col int, _ *grid.Cell) {
		r.drawCell(row, col, false)
	})
	r.opts.Logger.Debug("canvas drawn", "rows", r.m.Rows(), "cols", r.m.Cols(), "dark", dark)
}

// RedrawCell repaints one cell, keeping its hover outline if hovered.
func (r *Renderer) RedrawCell(row, col int) {
	if !r.m.In(row, col) {
		return
	}
	hovered := r.hover != nil && r.hover.row == row && r.hover.col == col
	r.drawCell(row, col, hovered)
}

func (r *Renderer) drawCell(row, col int, outline bool) {
	c := r.m.At(row, col)
	if c == nil {
		return
	}
	r.redraw++
	dark := r.opts.Dark
	geo := r.opts.Geometry
	x, y, size := float64(geo.X(col)), float64(geo.Y(row)), float64(geo.CellSize)

	// Clear one pixel around the cell so a previous outline disappears.
	r.dc.SetHexColor(palette.BackgroundHex(dark))
	r.dc.DrawRectangle(x-1, y-1, size+2, size+2)
	r.logFailure("clear", r.dc.Fill(), row, col)

	r.dc.SetHexColor(palette.Hex(c.Intensity, dark))
	r.dc.DrawRectangle(x, y, size, size)
	r.logFailure("fill", r.dc.Fill(), row, col)

	if outline {
		r.dc.SetHexColor(palette.OutlineHex(dark))
		r.dc.SetLineWidth(1)
		r.dc.DrawRectangle(x, y, size, size)
		r.logFailure("outline", r.dc.Stroke(), row, col)
	}
}

func (r *Renderer) logFailure(op string, err error, row, col int) {
	if err != nil {
		r.opts.Logger.Debug("canvas draw failed", "op", op, "row", row, "col", col, "err", err)
	}
}

// Hover handles a pointer move at (px, py). It restores the previously
// hovered cell, outlines the new one and returns its tooltip.
func (r *Renderer) Hover(px, py int) (Tooltip, bool) {
	row, col, ok := r.opts.Geometry.Hit(r.m, px, py)
	if r.hover != nil && ok && r.hover.row == row && r.hover.col == col {
		return r.tooltip(row, col), true
	}
	r.Leave()
	if !ok {
		return Tooltip{}, false
	}
	r.hover = &point{row: row, col: col}
	r.drawCell(row, col, true)
	return r.tooltip(row, col), true
}

// Leave clears the hover outline, e.g. when the pointer leaves the surface.
func (r *Renderer) Leave() {
	if r.hover == nil {
		return
	}
	prev := *r.hover
	r.hover = nil
	r.drawCell(prev.row, prev.col, false)
}

// Hovered returns the hovered cell position.
func (r *Renderer) Hovered() (row, col int, ok bool) {
	if r.hover == nil {
		return 0, 0, false
	}
	return r.hover.row, r.hover.col, true
}

func (r *Renderer) tooltip(row, col int) Tooltip {
	return TooltipFor(row, col, r.m.At(row, col))
}

// Context exposes the underlying surface.
func (r *Renderer) Context() *gg.Context { return r.dc }

// EncodePNG writes the current surface as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current surface to path.
func (r *Renderer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	if err := r.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("canvas: close %s: %w", path, err)
	}
	r.opts.Logger.Info("canvas exported", "path", path)
	return nil
}

// Close releases the surface.
func (r *Renderer) Close() error {
	return r.dc.Close()
}
