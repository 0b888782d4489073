package board

import "tableflip.dev/heatgrid/pkg/printers"

// Layout is where the grid sits inside the view, in terminal cells.
type Layout struct {
	Left      int
	Top       int
	CellWidth int
}

// DefaultLayout puts the grid below the title and month header, right of
// the weekday gutter.
func DefaultLayout() Layout {
	return Layout{Left: printers.LabelWidth, Top: 2, CellWidth: printers.CellWidth}
}

// Locate maps a terminal position to a grid cell. The result still needs a
// bounds check against the matrix.
func (l Layout) Locate(x, y int) (row, col int, ok bool) {
	if x < l.Left || y < l.Top || l.CellWidth <= 0 {
		return 0, 0, false
	}
	return y - l.Top, (x - l.Left) / l.CellWidth, true
}

// Position is the terminal position of the left half of (row, col).
func (l Layout) Position(row, col int) (x, y int) {
	return l.Left + col*l.CellWidth, l.Top + row
}
