package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practiva/models"
)

func TestResolveRangeDay(t *testing.T) {
	anchor := time.Date(2026, 3, 18, 15, 30, 0, 0, time.UTC) // a Wednesday

	cr, err := ResolveRange(models.ViewDay, anchor)
	require.NoError(t, err)

	midnight := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, cr.Start)
	assert.Equal(t, midnight, cr.End)
	assert.True(t, cr.Bounded)
	assert.Equal(t, midnight.AddDate(0, 0, -1), cr.PrevAnchor)
	assert.Equal(t, midnight.AddDate(0, 0, 1), cr.NextAnchor)
	assert.Equal(t, "Wednesday, 18 March 2026", cr.Label)
}

func TestResolveRangeWeekStartsMonday(t *testing.T) {
	for day := 16; day <= 22; day++ {
		anchor := time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
		cr, err := ResolveRange(models.ViewWeek, anchor)
		require.NoError(t, err)

		assert.Equal(t, time.Monday, cr.Start.Weekday())
		assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), cr.Start, "anchor day %d", day)
		assert.Equal(t, time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC), cr.End)
	}
}

func TestResolveRangeWeekSundayAnchor(t *testing.T) {
	// Sunday belongs to the week that began the previous Monday.
	sunday := time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)
	cr, err := ResolveRange(models.ViewWeek, sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), cr.Start)
}

func TestResolveRangeMonth(t *testing.T) {
	anchor := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)

	cr, err := ResolveRange(models.ViewMonth, anchor)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), cr.Start)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), cr.End)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), cr.PrevAnchor)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), cr.NextAnchor)
	assert.Equal(t, "March 2026", cr.Label)
}

func TestResolveRangeMonthFebruary(t *testing.T) {
	cr, err := ResolveRange(models.ViewMonth, time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), cr.End)

	// Leap year.
	cr, err = ResolveRange(models.ViewMonth, time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), cr.End)
}

func TestResolveRangeList(t *testing.T) {
	anchor := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)

	cr, err := ResolveRange(models.ViewList, anchor)
	require.NoError(t, err)
	assert.False(t, cr.Bounded)
	assert.Equal(t, anchor, cr.PrevAnchor)
	assert.Equal(t, anchor, cr.NextAnchor)
}

func TestResolveRangeUnknownView(t *testing.T) {
	var vErr *ValidationError
	_, err := ResolveRange(models.CalendarView("agenda"), time.Now())
	assert.ErrorAs(t, err, &vErr)
}

// Stepping forward then backward returns to the original period.
func TestResolveRangeNavigationRoundTrip(t *testing.T) {
	anchor := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)

	for _, view := range []models.CalendarView{models.ViewDay, models.ViewWeek, models.ViewMonth} {
		start, err := ResolveRange(view, anchor)
		require.NoError(t, err)

		forward, err := ResolveRange(view, start.NextAnchor)
		require.NoError(t, err)
		back, err := ResolveRange(view, forward.PrevAnchor)
		require.NoError(t, err)

		assert.Equal(t, start.Start, back.Start, string(view))
		assert.Equal(t, start.End, back.End, string(view))
	}
}
