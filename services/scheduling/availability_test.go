package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practiva/models"
)

func validWeek() *models.WeeklyAvailability {
	wa := &models.WeeklyAvailability{
		PractitionerID:    "p1",
		Days:              make([]models.DaySchedule, 7),
		BufferMinutes:     15,
		BookingWindowDays: 60,
	}
	for i := range wa.Days {
		wa.Days[i] = models.DaySchedule{
			DayOfWeek: i,
			Enabled:   i >= 1 && i <= 5, // weekdays only
			StartTime: 9 * 60,
			EndTime:   17 * 60,
		}
	}
	return wa
}

func TestValidateWeeklyAvailabilityAccepts(t *testing.T) {
	wa := validWeek()
	wa.Days[3].Breaks = []models.BreakInterval{
		{Start: 12 * 60, End: 13 * 60},
		{Start: 15 * 60, End: 15*60 + 15},
	}
	assert.NoError(t, ValidateWeeklyAvailability(wa))
}

func TestValidateWeeklyAvailabilityRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.WeeklyAvailability)
	}{
		{"six days", func(wa *models.WeeklyAvailability) {
			wa.Days = wa.Days[:6]
		}},
		{"days out of order", func(wa *models.WeeklyAvailability) {
			wa.Days[0].DayOfWeek, wa.Days[1].DayOfWeek = 1, 0
		}},
		{"inverted window", func(wa *models.WeeklyAvailability) {
			wa.Days[1].StartTime, wa.Days[1].EndTime = 17*60, 9*60
		}},
		{"empty window", func(wa *models.WeeklyAvailability) {
			wa.Days[1].StartTime = wa.Days[1].EndTime
		}},
		{"window past midnight", func(wa *models.WeeklyAvailability) {
			wa.Days[1].EndTime = MinutesPerDay + 30
		}},
		{"break before opening", func(wa *models.WeeklyAvailability) {
			wa.Days[1].Breaks = []models.BreakInterval{{Start: 8 * 60, End: 10 * 60}}
		}},
		{"break after closing", func(wa *models.WeeklyAvailability) {
			wa.Days[1].Breaks = []models.BreakInterval{{Start: 16 * 60, End: 18 * 60}}
		}},
		{"inverted break", func(wa *models.WeeklyAvailability) {
			wa.Days[1].Breaks = []models.BreakInterval{{Start: 13 * 60, End: 12 * 60}}
		}},
		{"overlapping breaks", func(wa *models.WeeklyAvailability) {
			wa.Days[1].Breaks = []models.BreakInterval{
				{Start: 12 * 60, End: 13 * 60},
				{Start: 12*60 + 30, End: 14 * 60},
			}
		}},
		{"negative buffer", func(wa *models.WeeklyAvailability) {
			wa.BufferMinutes = -5
		}},
		{"zero horizon", func(wa *models.WeeklyAvailability) {
			wa.BookingWindowDays = 0
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wa := validWeek()
			tc.mutate(wa)

			var vErr *ValidationError
			err := ValidateWeeklyAvailability(wa)
			require.Error(t, err)
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestValidateWeeklyAvailabilityNil(t *testing.T) {
	assert.Error(t, ValidateWeeklyAvailability(nil))
}

func TestValidateWeeklyAvailabilityIgnoresDisabledDayWindows(t *testing.T) {
	wa := validWeek()
	// A disabled day's window is never read; garbage values pass.
	wa.Days[0].StartTime, wa.Days[0].EndTime = 0, 0
	assert.NoError(t, ValidateWeeklyAvailability(wa))
}

func TestValidateWeeklyAvailabilityUnsortedBreaksAccepted(t *testing.T) {
	wa := validWeek()
	wa.Days[2].Breaks = []models.BreakInterval{
		{Start: 15 * 60, End: 15*60 + 30},
		{Start: 12 * 60, End: 13 * 60},
	}
	assert.NoError(t, ValidateWeeklyAvailability(wa))
}
