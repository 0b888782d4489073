package grid

// Matrix is a dense rows x cols grid of cells. Row is the weekday offset and
// column is the week offset, both 0-indexed.
type Matrix struct {
	cells [][]*Cell
	cols  int
}

// NewMatrix allocates a matrix of blank dateless cells.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	m := &Matrix{cells: make([][]*Cell, rows), cols: cols}
	for r := range m.cells {
		row := make([]*Cell, cols)
		for c := range row {
			row[c] = &Cell{}
		}
		m.cells[r] = row
	}
	return m
}

// FromWeeks builds a DaysPerWeek x len(weeks) matrix whose cells are the
// cells of weeks. Mutations through the matrix are visible in the weeks.
func FromWeeks(weeks []Week) *Matrix {
	m := &Matrix{cells: make([][]*Cell, DaysPerWeek), cols: len(weeks)}
	for r := range m.cells {
		row := make([]*Cell, len(weeks))
		for c, w := range weeks {
			row[c] = w[r]
		}
		m.cells[r] = row
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}
	return len(m.cells)
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// In reports whether (row, col) lies inside the matrix.
func (m *Matrix) In(row, col int) bool {
	return row >= 0 && col >= 0 && row < m.Rows() && col < m.Cols()
}

// At returns the cell at (row, col), or nil when out of bounds.
func (m *Matrix) At(row, col int) *Cell {
	if !m.In(row, col) {
		return nil
	}
	return m.cells[row][col]
}

// Row returns the cells of a single row. The slice must not be modified.
func (m *Matrix) Row(row int) []*Cell {
	if row < 0 || row >= m.Rows() {
		return nil
	}
	return m.cells[row]
}

// Each calls fn for every cell in row-major order.
func (m *Matrix) Each(fn func(row, col int, c *Cell)) {
	if m == nil {
		return
	}
	for r, row := range m.cells {
		for c, cell := range row {
			fn(r, c, cell)
		}
	}
}

// Values returns a copy of the intensities, mostly useful for comparisons.
func (m *Matrix) Values() [][]int {
	out := make([][]int, m.Rows())
	for r, row := range m.cells {
		vals := make([]int, len(row))
		for c, cell := range row {
			if cell != nil {
				vals[c] = cell.Intensity
			}
		}
		out[r] = vals
	}
	return out
}
