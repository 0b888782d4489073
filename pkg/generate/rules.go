// Package generate produces synthetic activity: a dated day sequence for
// the calendar view and a dateless matrix for drawing.
package generate

import (
	"math"
	"math/rand"
	"slices"

	"tableflip.dev/heatgrid/pkg/palette"
)

const (
	// MinLevel is the quietest level: every cell is empty.
	MinLevel = 0
	// MaxLevel is the busiest level: every cell is saturated.
	MaxLevel = 15
)

// ClampLevel forces level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	return min(max(level, MinLevel), MaxLevel)
}

// Boost mixes saturated cells into a level: with probability Chance the
// value is max(Floor, base), otherwise the top bucket.
type Boost struct {
	Chance float64
	Floor  int
}

// Rules maps a level to a per-cell intensity distribution.
type Rules struct {
	SparseLevel  int
	SparseChance float64
	// Dense levels never produce an empty cell.
	Dense     []int
	Boosted   map[int]Boost
	Saturated int
	Top       int
}

// CalendarRules is the distribution used for the dated calendar.
func CalendarRules() Rules {
	return Rules{
		SparseLevel:  1,
		SparseChance: 0.7,
		Dense:        []int{13, 14},
		Saturated:    MaxLevel,
		Top:          palette.TopBucket,
	}
}

// MatrixRules is the distribution used for the free drawing matrix.
func MatrixRules() Rules {
	return Rules{
		SparseLevel:  1,
		SparseChance: 0.7,
		Dense:        []int{11, 12},
		Boosted: map[int]Boost{
			13: {Chance: 0.3, Floor: 1},
			14: {Chance: 0.5, Floor: 2},
		},
		Saturated: MaxLevel,
		Top:       palette.TopBucket,
	}
}

// Intensity draws one cell value for level. Draws from rng happen in a fixed
// order so a seeded source reproduces the same grid.
func (r Rules) Intensity(level int, rng *rand.Rand) int {
	level = ClampLevel(level)
	value := int(math.Round(rng.Float64() * float64(level)))

	if level == r.SparseLevel {
		if rng.Float64() < r.SparseChance {
			return 0
		}
		return value
	}
	if slices.Contains(r.Dense, level) {
		return max(1, value)
	}
	if b, ok := r.Boosted[level]; ok {
		if rng.Float64() < b.Chance {
			return max(b.Floor, value)
		}
		return r.Top
	}
	if level == r.Saturated {
		return r.Top
	}
	return value
}
