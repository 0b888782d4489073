package app

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how the grid is produced.
type Mode int

const (
	// ModeCalendar generates dated days and groups them by week and month.
	ModeCalendar Mode = iota
	// ModeMatrix generates a dateless matrix for drawing and text.
	ModeMatrix
)

// ErrUnknownMode is returned by ParseMode for unsupported names.
var ErrUnknownMode = errors.New("app: unknown mode")

func (m Mode) String() string {
	switch m {
	case ModeCalendar:
		return "calendar"
	case ModeMatrix:
		return "matrix"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "calendar" or "matrix".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "calendar":
		return ModeCalendar, nil
	case "matrix":
		return ModeMatrix, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
