// Package grid holds the cell, week and matrix types shared by the
// generator, grouper, stamper, paint session and renderers.
package grid

import (
	"fmt"
	"time"
)

const (
	// DaysPerWeek is the fixed number of rows in every grid.
	DaysPerWeek = 7
	// DefaultCols is the number of week columns in a free-form matrix.
	DefaultCols = 53
)

// Cell is a single day of activity. A zero Date means the cell is not tied
// to a calendar day.
type Cell struct {
	Date      time.Time `json:"date,omitempty" yaml:"date,omitempty"`
	Intensity int       `json:"intensity" yaml:"intensity"`
	// Padding cells fill out partial weeks and are never painted.
	Padding bool `json:"padding,omitempty" yaml:"padding,omitempty"`
}

// NewPadding returns an empty cell used to complete a week.
func NewPadding() *Cell {
	return &Cell{Padding: true}
}

// HasDate reports whether the cell belongs to a calendar day.
func (c *Cell) HasDate() bool {
	return c != nil && !c.Date.IsZero()
}

// Day formats the cell date as YYYY-MM-DD, or "" for dateless cells.
func (c *Cell) Day() string {
	if !c.HasDate() {
		return ""
	}
	return c.Date.Format(time.DateOnly)
}

// Week is one column of the grid, indexed by weekday offset from the
// configured week start.
type Week [DaysPerWeek]*Cell

// First returns the first non-padding cell of the week.
func (w Week) First() *Cell {
	for _, c := range w {
		if c != nil && !c.Padding {
			return c
		}
	}
	return nil
}

// MonthKey identifies the calendar month a week is filed under.
type MonthKey struct {
	Year  int
	Month time.Month
}

// KeyOf returns the month key for t.
func KeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Compare orders keys chronologically.
func (k MonthKey) Compare(o MonthKey) int {
	switch {
	case k.Year < o.Year:
		return -1
	case k.Year > o.Year:
		return 1
	case k.Month < o.Month:
		return -1
	case k.Month > o.Month:
		return 1
	}
	return 0
}

// Before reports whether k is chronologically earlier than o.
func (k MonthKey) Before(o MonthKey) bool { return k.Compare(o) < 0 }

// Label is the short month name, e.g. "Jan".
func (k MonthKey) Label() string {
	return k.Month.String()[:3]
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%d-%d", k.Year, int(k.Month))
}

// WeekdayLabels returns row labels for a week starting on start, labelling
// only Monday, Wednesday and Friday.
func WeekdayLabels(start time.Weekday) [DaysPerWeek]string {
	var out [DaysPerWeek]string
	for row := range out {
		switch wd := time.Weekday((int(start) + row) % DaysPerWeek); wd {
		case time.Monday, time.Wednesday, time.Friday:
			out[row] = wd.String()[:3]
		}
	}
	return out
}
