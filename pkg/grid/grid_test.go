package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKeyCompareAcrossYears(t *testing.T) {
	dec := MonthKey{Year: 2024, Month: time.December}
	jan := MonthKey{Year: 2025, Month: time.January}
	oct := MonthKey{Year: 2024, Month: time.October}

	assert.True(t, dec.Before(jan))
	assert.True(t, oct.Before(dec))
	assert.False(t, jan.Before(dec))
	assert.Equal(t, 0, jan.Compare(jan))
	sep := MonthKey{Year: 2024, Month: time.September}
	assert.True(t, sep.Before(oct))
	// String order disagrees with calendar order once months reach two digits.
	assert.Less(t, oct.String(), sep.String())
	assert.Equal(t, "Dec", dec.Label())
}

func TestMatrixBounds(t *testing.T) {
	m := NewMatrix(DaysPerWeek, DefaultCols)
	require.Equal(t, 7, m.Rows())
	require.Equal(t, 53, m.Cols())

	assert.NotNil(t, m.At(0, 0))
	assert.NotNil(t, m.At(6, 52))
	assert.Nil(t, m.At(7, 0))
	assert.Nil(t, m.At(0, 53))
	assert.Nil(t, m.At(-1, 3))
	assert.False(t, m.At(3, 3).Padding)
}

func TestFromWeeksSharesCells(t *testing.T) {
	var w Week
	for i := range w {
		w[i] = &Cell{Intensity: i}
	}
	m := FromWeeks([]Week{w})
	require.Equal(t, 7, m.Rows())
	require.Equal(t, 1, m.Cols())

	m.At(4, 0).Intensity = 9
	assert.Equal(t, 9, w[4].Intensity)
}

func TestWeekFirstSkipsPadding(t *testing.T) {
	d := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	w := Week{NewPadding(), {Date: d}}
	for i := 2; i < len(w); i++ {
		w[i] = NewPadding()
	}
	require.NotNil(t, w.First())
	assert.Equal(t, "2024-03-03", w.First().Day())
}

func TestWeekdayLabels(t *testing.T) {
	assert.Equal(t, [DaysPerWeek]string{"", "Mon", "", "Wed", "", "Fri", ""}, WeekdayLabels(time.Sunday))
	assert.Equal(t, [DaysPerWeek]string{"Mon", "", "Wed", "", "Fri", "", ""}, WeekdayLabels(time.Monday))
}
