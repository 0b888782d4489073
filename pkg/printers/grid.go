// Package printers writes grids, legends and structured documents to a
// terminal or any io.Writer.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"tableflip.dev/heatgrid/pkg/app"
	"tableflip.dev/heatgrid/pkg/grid"
	"tableflip.dev/heatgrid/pkg/group"
	"tableflip.dev/heatgrid/pkg/palette"
)

const (
	// CellWidth is how many terminal columns one grid cell takes.
	CellWidth = 2
	// LabelWidth is the gutter reserved for weekday labels.
	LabelWidth = 4
)

// shades stand in for colors when the output cannot carry them.
var shades = [palette.TopBucket + 1]string{"·", "░", "▒", "▓", "█"}

// GridPrinter prints a heat-map one terminal row per grid row.
type GridPrinter struct {
	Out       io.Writer
	Dark      bool
	WeekStart time.Weekday
	// Profile selects the color depth; termenv.Ascii prints shade runes.
	Profile termenv.Profile
}

// NewGridPrinter picks truecolor when w is a terminal and plain text
// otherwise.
func NewGridPrinter(w io.Writer, dark bool, start time.Weekday) *GridPrinter {
	profile := termenv.Ascii
	if IsTerminal(w) {
		profile = termenv.TrueColor
	}
	return &GridPrinter{Out: w, Dark: dark, WeekStart: start, Profile: profile}
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *GridPrinter) plain() bool {
	return p.Profile == termenv.Ascii
}

func (p *GridPrinter) output() *termenv.Output {
	return termenv.NewOutput(p.Out, termenv.WithProfile(p.Profile))
}

func (p *GridPrinter) printer(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.plain() {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

// Grid prints the month header, when the snapshot has one, and every row
// with its weekday label.
func (p *GridPrinter) Grid(snap *app.Snapshot) {
	out := p.output()
	if len(snap.Spans) > 0 {
		_, _ = fmt.Fprintln(p.Out, p.header(out, snap.Spans))
	}
	labels := grid.WeekdayLabels(p.WeekStart)
	for row := 0; row < snap.Matrix.Rows(); row++ {
		var b strings.Builder
		b.WriteString(pad(p.label(out, labels[row]), LabelWidth))
		for _, c := range snap.Matrix.Row(row) {
			b.WriteString(p.cell(out, c))
		}
		_, _ = fmt.Fprintln(p.Out, b.String())
	}
}

func (p *GridPrinter) header(out *termenv.Output, spans []group.Span) string {
	return MonthHeader(spans, func(s string) string { return p.label(out, s) })
}

// MonthHeader lays month labels over their week columns, leaving room for
// the weekday gutter. style decorates each label and may add escape codes.
func MonthHeader(spans []group.Span, style func(string) string) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", LabelWidth))
	for _, s := range spans {
		width := s.Span * CellWidth
		text := ""
		// A single week is too narrow for a label.
		if s.Span >= 2 {
			text = style(truncate.String(s.Label, uint(width)))
		}
		b.WriteString(pad(text, width))
	}
	return strings.TrimRight(b.String(), " ")
}

func (p *GridPrinter) label(out *termenv.Output, s string) string {
	if s == "" || p.plain() {
		return s
	}
	return out.String(s).Foreground(p.color(out, palette.LabelHex(p.Dark))).String()
}

func (p *GridPrinter) cell(out *termenv.Output, c *grid.Cell) string {
	if c == nil || c.Padding {
		return strings.Repeat(" ", CellWidth)
	}
	return p.swatch(out, c.Intensity, p.Dark)
}

func (p *GridPrinter) swatch(out *termenv.Output, intensity int, dark bool) string {
	if p.plain() {
		return strings.Repeat(shades[palette.Bucket(intensity)], CellWidth)
	}
	hex := palette.Hex(intensity, dark)
	return out.String(strings.Repeat(" ", CellWidth)).Background(p.color(out, hex)).String()
}

// color keeps palette bytes exact on truecolor output; termenv's own
// RGBColor truncates each channel while converting from hex.
func (p *GridPrinter) color(out *termenv.Output, hex string) termenv.Color {
	if p.Profile == termenv.TrueColor {
		c := palette.ToRGBA(hex)
		return rgb{c.R, c.G, c.B}
	}
	return out.Color(hex)
}

type rgb struct{ r, g, b uint8 }

func (c rgb) Sequence(bg bool) string {
	layer := 38
	if bg {
		layer = 48
	}
	return fmt.Sprintf("%d;2;%d;%d;%d", layer, c.r, c.g, c.b)
}

// Summary prints the contribution total and the color scale.
func (p *GridPrinter) Summary(snap *app.Snapshot, mode app.Mode) {
	bold := p.printer(color.Bold)
	faint := p.printer(color.Faint)

	total := snap.Total()
	noun := "contributions"
	if total == 1 {
		noun = "contribution"
	}
	_, _ = bold.Fprintf(p.Out, "%d %s", total, noun)
	if mode == app.ModeCalendar {
		_, _ = fmt.Fprint(p.Out, " in the last year")
	}
	_, _ = fmt.Fprintln(p.Out)

	out := p.output()
	var b strings.Builder
	for i := 0; i <= palette.TopBucket; i++ {
		b.WriteString(p.swatch(out, i, p.Dark))
	}
	_, _ = faint.Fprint(p.Out, "Less ")
	_, _ = fmt.Fprint(p.Out, b.String())
	_, _ = faint.Fprintln(p.Out, " More")
}

// pad right-pads s with spaces to width printable columns, ignoring any
// escape sequences in s.
func pad(s string, width int) string {
	n := ansi.PrintableRuneWidth(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
