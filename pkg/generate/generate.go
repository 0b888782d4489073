package generate

import (
	"math/rand"
	"time"

	"tableflip.dev/heatgrid/pkg/grid"
)

// DefaultDays is the number of days in the calendar before alignment.
const DefaultDays = 365

// Options tune the calendar generator.
type Options struct {
	// Days before the alignment extension; zero means DefaultDays.
	Days int
	// WeekStart is the weekday the earliest generated day is aligned to.
	WeekStart time.Weekday
	Rules     *Rules
	Rand      *rand.Rand
}

func (o Options) days() int {
	if o.Days <= 0 {
		return DefaultDays
	}
	return o.Days
}

func (o Options) rules() Rules {
	if o.Rules == nil {
		return CalendarRules()
	}
	return *o.Rules
}

// NewRand returns a source seeded with seed, or with the clock when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (o Options) rand() *rand.Rand {
	if o.Rand == nil {
		return NewRand(0)
	}
	return o.Rand
}

// Extra returns how many days must be added to a count-day window ending at
// ref so that its earliest day falls on start.
func Extra(ref time.Time, count int, start time.Weekday) int {
	earliest := dayOf(ref).AddDate(0, 0, -(count - 1))
	return (int(earliest.Weekday()) - int(start) + 7) % 7
}

// Calendar returns one cell per day going backward from ref, newest first.
func Calendar(level int, ref time.Time, opts Options) []*grid.Cell {
	rules := opts.rules()
	rng := opts.rand()
	count := opts.days()
	count += Extra(ref, count, opts.WeekStart)

	day := dayOf(ref)
	out := make([]*grid.Cell, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, &grid.Cell{
			Date:      day.AddDate(0, 0, -i),
			Intensity: rules.Intensity(level, rng),
		})
	}
	return out
}

// Matrix fills a rows x cols dateless matrix with intensities for level.
func Matrix(level, rows, cols int, rules Rules, rng *rand.Rand) *grid.Matrix {
	if rng == nil {
		rng = NewRand(0)
	}
	m := grid.NewMatrix(rows, cols)
	m.Each(func(_, _ int, c *grid.Cell) {
		c.Intensity = rules.Intensity(level, rng)
	})
	return m
}

// dayOf truncates t to midnight in its own location.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
