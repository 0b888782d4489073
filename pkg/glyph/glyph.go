// Package glyph stamps bitmap text into a grid by darkening cells.
package glyph

import (
	"sort"
	"unicode"

	"tableflip.dev/heatgrid/pkg/grid"
)

const (
	// Stride is how far the column cursor moves after every rune.
	Stride = 6
	// SpaceAdvance is the extra advance a space gets on top of Stride.
	SpaceAdvance = 1
	// TopMargin keeps the first row of the grid free of glyph pixels.
	TopMargin = 1
)

// Pattern is a bitmap where 1 darkens the cell at that offset.
type Pattern [][]uint8

var patterns = compile(font)

func compile(src map[rune][]string) map[rune]Pattern {
	out := make(map[rune]Pattern, len(src))
	for r, rows := range src {
		p := make(Pattern, len(rows))
		for i, row := range rows {
			bits := make([]uint8, len(row))
			for j, ch := range row {
				if ch == '#' {
					bits[j] = 1
				}
			}
			p[i] = bits
		}
		out[r] = p
	}
	return out
}

// Lookup returns the pattern for r. Lowercase letters use the uppercase
// pattern.
func Lookup(r rune) (Pattern, bool) {
	if p, ok := patterns[r]; ok {
		return p, true
	}
	p, ok := patterns[unicode.ToUpper(r)]
	return p, ok
}

// Supported lists every rune with a pattern, sorted.
func Supported() []rune {
	out := make([]rune, 0, len(patterns))
	for r := range patterns {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Width returns how many columns the cursor travels while stamping text.
func Width(text string) int {
	w := 0
	for _, r := range text {
		if r == ' ' {
			w += SpaceAdvance
		}
		w += Stride
	}
	return w
}

// Stamp writes text into m starting at (row, col). Cells under a pattern bit
// are set to zero and nothing else changes, so stamping is idempotent.
// Unknown runes and cells outside m are skipped.
func Stamp(m *grid.Matrix, text string, row, col int) {
	top := row + TopMargin
	for _, r := range text {
		if r == ' ' {
			col += SpaceAdvance
		} else if p, ok := Lookup(r); ok {
			overlay(m, p, top, col)
		}
		col += Stride
	}
}

func overlay(m *grid.Matrix, p Pattern, row, col int) {
	for i, bits := range p {
		for j, bit := range bits {
			if bit != 1 {
				continue
			}
			if c := m.At(row+i, col+j); c != nil {
				c.Intensity = 0
			}
		}
	}
}

// Centered returns the column that centers text in a matrix of cols columns.
func Centered(text string, cols int) int {
	// The trailing stride gap is not part of the visible text.
	w := Width(text) - (Stride - 5)
	if w >= cols {
		return 0
	}
	return (cols - w) / 2
}
