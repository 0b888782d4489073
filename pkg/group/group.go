// Package group arranges a day sequence into calendar weeks filed by month.
package group

import (
	"slices"
	"time"

	"tableflip.dev/heatgrid/pkg/grid"
)

// Layout maps each month to its week columns, in chronological order.
type Layout map[grid.MonthKey][]grid.Week

// Span is a month header covering Span columns starting at Col.
type Span struct {
	Key   grid.MonthKey
	Label string
	Col   int
	Span  int
}

// Reverse returns days in the opposite order without touching the input.
func Reverse(days []*grid.Cell) []*grid.Cell {
	out := slices.Clone(days)
	slices.Reverse(out)
	return out
}

// Weeks groups ascending days into weeks starting on start. A week is filed
// under the month of its first day, so a week that starts on Dec 29 belongs
// to December even though it holds January days.
func Weeks(days []*grid.Cell, start time.Weekday) Layout {
	layout := make(Layout)
	var current []*grid.Cell

	flush := func() {
		if len(current) == 0 {
			return
		}
		var w grid.Week
		for i := range w {
			if i < len(current) {
				w[i] = current[i]
			} else {
				w[i] = grid.NewPadding()
			}
		}
		key := grid.KeyOf(current[0].Date)
		layout[key] = append(layout[key], w)
		current = nil
	}

	for _, d := range days {
		if d == nil || !d.HasDate() {
			continue
		}
		if d.Date.Weekday() == start || len(current) == grid.DaysPerWeek {
			flush()
		}
		current = append(current, d)
	}
	flush()
	return layout
}

// Keys returns the month keys sorted by calendar order.
func (l Layout) Keys() []grid.MonthKey {
	keys := make([]grid.MonthKey, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, grid.MonthKey.Compare)
	return keys
}

// Columns returns every week in chronological order.
func (l Layout) Columns() []grid.Week {
	var out []grid.Week
	for _, k := range l.Keys() {
		out = append(out, l[k]...)
	}
	return out
}

// Matrix flattens the layout into a 7 x weeks matrix sharing the cells.
func (l Layout) Matrix() *grid.Matrix {
	return grid.FromWeeks(l.Columns())
}

// Spans returns one header per month; each spans its week count.
func (l Layout) Spans() []Span {
	var (
		out []Span
		col int
	)
	for _, k := range l.Keys() {
		n := len(l[k])
		out = append(out, Span{Key: k, Label: k.Label(), Col: col, Span: n})
		col += n
	}
	return out
}
