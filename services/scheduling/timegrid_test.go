package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "9am", "24:00", "12:60", "12.30"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, minute := range []int{0, 540, 750, 1439} {
		parsed, err := ParseClock(FormatClock(minute))
		require.NoError(t, err)
		assert.Equal(t, minute, parsed)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
}

func TestIntervalOverlaps(t *testing.T) {
	base := Interval{Start: 600, End: 660}

	assert.True(t, base.Overlaps(Interval{Start: 630, End: 700}))
	assert.True(t, base.Overlaps(Interval{Start: 550, End: 601}))
	assert.True(t, base.Overlaps(Interval{Start: 610, End: 620}))

	// Half-open: touching edges do not overlap.
	assert.False(t, base.Overlaps(Interval{Start: 660, End: 720}))
	assert.False(t, base.Overlaps(Interval{Start: 540, End: 600}))
}

func TestAtMinuteAndMinuteOfDay(t *testing.T) {
	day := time.Date(2026, 3, 16, 14, 45, 0, 0, time.UTC)

	at := AtMinute(day, 9*60+30)
	assert.Equal(t, 16, at.Day())
	assert.Equal(t, 9, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, 9*60+30, MinuteOfDay(at))
}

func TestDayInterval(t *testing.T) {
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	iv, ok := DayInterval(day, AtMinute(day, 600), AtMinute(day, 660))
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 600, End: 660}, iv)

	// Span starting the previous evening is clipped at midnight.
	iv, ok = DayInterval(day, AtMinute(day, -60), AtMinute(day, 120))
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 0, End: 120}, iv)

	// Span running past midnight is clipped at the day's end.
	iv, ok = DayInterval(day, AtMinute(day, 23*60), AtMinute(day, 25*60))
	require.True(t, ok)
	assert.Equal(t, Interval{Start: 23 * 60, End: MinutesPerDay}, iv)

	// Entirely outside the day.
	_, ok = DayInterval(day, AtMinute(day, MinutesPerDay), AtMinute(day, MinutesPerDay+60))
	assert.False(t, ok)
}
