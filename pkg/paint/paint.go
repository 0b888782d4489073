// Package paint implements the press, drag and release gesture that paints
// cell intensities by hand.
package paint

import (
	"math/rand"

	"tableflip.dev/heatgrid/pkg/grid"
)

// Session is Idle until a press, then Active with one fill value for the
// whole stroke until a release. The zero value is an Idle session that
// draws from a clock-seeded source.
type Session struct {
	rng    *rand.Rand
	active bool
	fill   int
}

// New returns an idle session drawing fill values from rng.
func New(rng *rand.Rand) *Session {
	return &Session{rng: rng}
}

// Active reports whether a stroke is in progress.
func (s *Session) Active() bool { return s.active }

// Fill returns the stroke's fill value and whether a stroke is in progress.
func (s *Session) Fill() (int, bool) {
	if !s.active {
		return 0, false
	}
	return s.fill, true
}

func paintable(c *grid.Cell) bool {
	return c != nil && !c.Padding
}

// Press starts a stroke on c. An empty cell picks a random fill in
// [1, level] and a non-empty cell starts an erasing stroke. It reports
// whether c changed.
func (s *Session) Press(c *grid.Cell, level int) bool {
	if !paintable(c) {
		return false
	}
	if c.Intensity == 0 {
		s.fill = 1 + s.intn(max(level, 1))
	} else {
		s.fill = 0
	}
	s.active = true
	return s.set(c)
}

// Move applies the stroke's fill to c while a stroke is in progress.
func (s *Session) Move(c *grid.Cell) bool {
	if !s.active || !paintable(c) {
		return false
	}
	return s.set(c)
}

// Release ends the stroke. It is safe to call while Idle.
func (s *Session) Release() {
	s.active = false
	s.fill = 0
}

func (s *Session) set(c *grid.Cell) bool {
	if c.Intensity == s.fill {
		return false
	}
	c.Intensity = s.fill
	return true
}

func (s *Session) intn(n int) int {
	if s.rng == nil {
		return rand.Intn(n)
	}
	return s.rng.Intn(n)
}
