// Package canvas draws the grid onto a pixel surface and maps pointer
// positions back to cells.
package canvas

import (
	"image"

	"tableflip.dev/heatgrid/pkg/grid"
)

// Geometry is the pixel layout of the grid.
type Geometry struct {
	CellSize int
	Padding  int
	// Left and Top reserve room for weekday and month labels.
	Left int
	Top  int
}

// DefaultGeometry matches the classic contribution chart.
func DefaultGeometry() Geometry {
	return Geometry{CellSize: 10, Padding: 2, Left: 30, Top: 20}
}

func (g Geometry) step() int {
	return g.CellSize + g.Padding
}

// X returns the left edge of column col.
func (g Geometry) X(col int) int { return col*g.step() + g.Left }

// Y returns the top edge of row row.
func (g Geometry) Y(row int) int { return row*g.step() + g.Top }

// Cell returns the pixel rectangle of (row, col).
func (g Geometry) Cell(row, col int) image.Rectangle {
	x, y := g.X(col), g.Y(row)
	return image.Rect(x, y, x+g.CellSize, y+g.CellSize)
}

// Locate is the inverse of Cell: the (row, col) whose slot contains the
// pixel. The result may lie outside any matrix.
func (g Geometry) Locate(px, py int) (row, col int) {
	s := g.step()
	if s <= 0 {
		return -1, -1
	}
	return floorDiv(py-g.Top, s), floorDiv(px-g.Left, s)
}

// Hit returns the cell under the pixel, if any.
func (g Geometry) Hit(m *grid.Matrix, px, py int) (row, col int, ok bool) {
	row, col = g.Locate(px, py)
	if !m.In(row, col) {
		return row, col, false
	}
	return row, col, true
}

// Size returns the surface size needed for a rows x cols grid.
func (g Geometry) Size(rows, cols int) (w, h int) {
	return cols*g.step() + g.Left, rows*g.step() + g.Top
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
