package generate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/heatgrid/pkg/grid"
	"tableflip.dev/heatgrid/pkg/palette"
)

var ref = time.Date(2025, time.March, 12, 15, 4, 5, 0, time.UTC)

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 0, ClampLevel(-4))
	assert.Equal(t, 7, ClampLevel(7))
	assert.Equal(t, MaxLevel, ClampLevel(99))
}

func TestCalendarLevelZeroIsEmpty(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		days := Calendar(0, ref, Options{Rand: rand.New(rand.NewSource(seed))})
		for _, d := range days {
			require.Zero(t, d.Intensity, "day %s", d.Day())
		}
	}
}

func TestCalendarMaxLevelIsSaturated(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		days := Calendar(MaxLevel, ref, Options{Rand: rand.New(rand.NewSource(seed))})
		for _, d := range days {
			require.Equal(t, palette.TopBucket, d.Intensity)
		}
	}
}

func TestCalendarDenseBandHasNoEmptyDays(t *testing.T) {
	for _, level := range CalendarRules().Dense {
		for seed := int64(1); seed <= 20; seed++ {
			days := Calendar(level, ref, Options{Rand: rand.New(rand.NewSource(seed))})
			for _, d := range days {
				require.NotZero(t, d.Intensity, "level %d seed %d", level, seed)
				require.LessOrEqual(t, d.Intensity, level)
			}
		}
	}
}

func TestCalendarOutOfRangeLevelIsClamped(t *testing.T) {
	high := Calendar(40, ref, Options{Rand: rand.New(rand.NewSource(1))})
	for _, d := range high {
		assert.Equal(t, palette.TopBucket, d.Intensity)
	}
	low := Calendar(-3, ref, Options{Rand: rand.New(rand.NewSource(1))})
	for _, d := range low {
		assert.Zero(t, d.Intensity)
	}
}

func TestCalendarSparseLevel(t *testing.T) {
	days := Calendar(1, ref, Options{Rand: rand.New(rand.NewSource(3))})
	zeros := 0
	for _, d := range days {
		require.LessOrEqual(t, d.Intensity, 1)
		if d.Intensity == 0 {
			zeros++
		}
	}
	// 70% forced empties plus half of the remaining rounds to zero.
	assert.Greater(t, zeros, len(days)*3/4)
}

func TestCalendarIsDescendingAndAligned(t *testing.T) {
	for _, start := range []time.Weekday{time.Sunday, time.Monday} {
		days := Calendar(3, ref, Options{WeekStart: start, Rand: rand.New(rand.NewSource(1))})
		require.GreaterOrEqual(t, len(days), DefaultDays)
		require.Less(t, len(days), DefaultDays+7)

		assert.Equal(t, "2025-03-12", days[0].Day())
		for i := 1; i < len(days); i++ {
			require.Equal(t, days[i-1].Date.AddDate(0, 0, -1), days[i].Date)
		}
		assert.Equal(t, start, days[len(days)-1].Date.Weekday())
	}
}

func TestCalendarIsReproducible(t *testing.T) {
	a := Calendar(6, ref, Options{Rand: rand.New(rand.NewSource(42))})
	b := Calendar(6, ref, Options{Rand: rand.New(rand.NewSource(42))})
	require.Len(t, b, len(a))
	for i := range a {
		require.Equal(t, a[i].Intensity, b[i].Intensity)
	}
}

func TestExtra(t *testing.T) {
	// 2025-03-12 minus 364 days is Wednesday 2024-03-13.
	assert.Equal(t, 3, Extra(ref, DefaultDays, time.Sunday))
	assert.Equal(t, 2, Extra(ref, DefaultDays, time.Monday))
	assert.Equal(t, 0, Extra(ref, 1, time.Wednesday))
}

func TestMatrixRules(t *testing.T) {
	rules := MatrixRules()
	rng := rand.New(rand.NewSource(9))

	m := Matrix(MaxLevel, grid.DaysPerWeek, grid.DefaultCols, rules, rng)
	require.Equal(t, grid.DaysPerWeek, m.Rows())
	require.Equal(t, grid.DefaultCols, m.Cols())
	m.Each(func(_, _ int, c *grid.Cell) {
		require.Equal(t, palette.TopBucket, c.Intensity)
		require.False(t, c.HasDate())
	})

	for _, level := range []int{11, 12} {
		Matrix(level, 7, 53, rules, rng).Each(func(_, _ int, c *grid.Cell) {
			require.NotZero(t, c.Intensity)
		})
	}

	Matrix(14, 7, 53, rules, rng).Each(func(_, _ int, c *grid.Cell) {
		require.GreaterOrEqual(t, c.Intensity, 2)
	})
}
