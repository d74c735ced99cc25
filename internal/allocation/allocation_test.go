package allocation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestPeak_OverlappingTasks(t *testing.T) {
	peak, from, to, tasks := Peak([]Booking{
		{ResourceID: "r1", TaskID: "t1", StartDate: day(5), EndDate: day(9), Percentage: 60},
		{ResourceID: "r1", TaskID: "t2", StartDate: day(8), EndDate: day(12), Percentage: 60},
	})

	assert.Equal(t, 120.0, peak)
	assert.Equal(t, day(8), from)
	assert.Equal(t, day(9), to)
	assert.Equal(t, []string{"t1", "t2"}, tasks)
}

func TestPeak_AdjacentTasksDoNotOverlap(t *testing.T) {
	peak, _, _, _ := Peak([]Booking{
		{TaskID: "t1", StartDate: day(5), EndDate: day(9), Percentage: 100},
		{TaskID: "t2", StartDate: day(10), EndDate: day(12), Percentage: 100},
	})

	assert.Equal(t, 100.0, peak)
}

func TestPeak_SingleDayTask(t *testing.T) {
	peak, from, to, _ := Peak([]Booking{
		{TaskID: "t1", StartDate: day(5), EndDate: day(5), Percentage: 150},
	})

	assert.Equal(t, 150.0, peak)
	assert.Equal(t, day(5), from)
	assert.Equal(t, day(5), to)
}

func TestPeak_IgnoresInvertedRanges(t *testing.T) {
	peak, _, _, _ := Peak([]Booking{{TaskID: "t1", StartDate: day(9), EndDate: day(5), Percentage: 300}})

	assert.Zero(t, peak)
}

func TestCheck(t *testing.T) {
	bookings := []Booking{
		{ResourceID: "r2", TaskID: "a", StartDate: day(1), EndDate: day(10), Percentage: 80},
		{ResourceID: "r2", TaskID: "b", StartDate: day(3), EndDate: day(4), Percentage: 40},
		{ResourceID: "r1", TaskID: "a", StartDate: day(1), EndDate: day(10), Percentage: 100},
		{ResourceID: "r3", TaskID: "c", StartDate: day(1), EndDate: day(2), Percentage: 250},
	}

	t.Run("scope limits the resources checked", func(t *testing.T) {
		warnings := Check(bookings, []string{"r1", "r2"})

		require.Len(t, warnings, 1)
		assert.Equal(t, "r2", warnings[0].ResourceID)
		assert.Equal(t, 120.0, warnings[0].PeakPercent)
		assert.Equal(t, "resource r2 is allocated 120% between 2026-01-03 and 2026-01-04", warnings[0].Message)
	})

	t.Run("empty scope checks everything", func(t *testing.T) {
		warnings := Check(bookings, nil)

		require.Len(t, warnings, 2)
		assert.Equal(t, "r2", warnings[0].ResourceID)
		assert.Equal(t, "r3", warnings[1].ResourceID)
	})

	t.Run("exactly full is not a warning", func(t *testing.T) {
		assert.Empty(t, Check(bookings, []string{"r1"}))
	})
}
