package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practiva/models"
)

func workingDay() models.DaySchedule {
	return models.DaySchedule{
		DayOfWeek: 1,
		Enabled:   true,
		StartTime: 9 * 60,
		EndTime:   18 * 60,
	}
}

func TestGenerateSlotsEmptyDay(t *testing.T) {
	day := workingDay()

	slots := GenerateSlots(day, nil, 0, 60)

	require.NotEmpty(t, slots)
	assert.Equal(t, 9*60, slots[0])
	// Last start that still fits a 60-minute session before 18:00.
	assert.Equal(t, 17*60, slots[len(slots)-1])
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, SlotStride, slots[i]-slots[i-1])
	}
}

func TestGenerateSlotsDisabledDay(t *testing.T) {
	day := workingDay()
	day.Enabled = false

	assert.Empty(t, GenerateSlots(day, nil, 0, 60))
}

func TestGenerateSlotsSessionMustFitBeforeClosing(t *testing.T) {
	day := workingDay()

	slots := GenerateSlots(day, nil, 0, 90)

	// 17:00 would run until 18:30; the last fitting start is 16:30.
	assert.Equal(t, 16*60+30, slots[len(slots)-1])
}

func TestGenerateSlotsSkipsBreaks(t *testing.T) {
	day := workingDay()
	day.Breaks = []models.BreakInterval{{Start: 12 * 60, End: 13 * 60}}

	slots := GenerateSlots(day, nil, 0, 60)

	// 11:30 through 12:30 would overlap the break; 11:00 ends exactly at
	// its start and 13:00 begins exactly at its end.
	assert.Contains(t, slots, 11*60)
	assert.NotContains(t, slots, 11*60+30)
	assert.NotContains(t, slots, 12*60)
	assert.NotContains(t, slots, 12*60+30)
	assert.Contains(t, slots, 13*60)
}

func TestGenerateSlotsBufferDilatesAppointments(t *testing.T) {
	day := workingDay()
	day.Breaks = []models.BreakInterval{{Start: 12 * 60, End: 13 * 60}}
	busy := []Busy{
		{Interval: Interval{Start: 10 * 60, End: 11 * 60}, Buffered: true},
	}

	slots := GenerateSlots(day, busy, 15, 60)

	// Every candidate ending after 09:45 or starting before 11:15
	// collides with the buffer-dilated appointment.
	for _, excluded := range []int{9 * 60, 9*60 + 30, 10 * 60, 10*60 + 30, 11 * 60} {
		assert.NotContains(t, slots, excluded, "start %s should be blocked", FormatClock(excluded))
	}
	// 11:30 clears the buffer but runs into the lunch break.
	assert.NotContains(t, slots, 11*60+30)
	assert.Equal(t, []int{
		13 * 60, 13*60 + 30, 14 * 60, 14*60 + 30,
		15 * 60, 15*60 + 30, 16 * 60, 16*60 + 30, 17 * 60,
	}, slots)
}

func TestGenerateSlotsTimeBlocksAreNotDilated(t *testing.T) {
	day := workingDay()
	busy := []Busy{
		{Interval: Interval{Start: 10 * 60, End: 11 * 60}, Buffered: false},
	}

	slots := GenerateSlots(day, busy, 15, 60)

	// A time block obstructs exactly its own span: sessions may touch
	// both its edges despite the buffer.
	assert.Contains(t, slots, 9*60)
	assert.NotContains(t, slots, 9*60+30)
	assert.NotContains(t, slots, 10*60+30)
	assert.Contains(t, slots, 11*60)
}

func TestGenerateSlotsAdjacentGeneratedSlotsMayTouch(t *testing.T) {
	day := workingDay()

	slots := GenerateSlots(day, nil, 15, 30)

	// Buffering applies only to already-booked intervals. Fresh
	// candidates sit back to back even with a buffer configured.
	assert.Contains(t, slots, 9*60)
	assert.Contains(t, slots, 9*60+30)
}

func TestGenerateSlotsNonPositiveDuration(t *testing.T) {
	assert.Empty(t, GenerateSlots(workingDay(), nil, 0, 0))
	assert.Empty(t, GenerateSlots(workingDay(), nil, 0, -30))
}

func TestGenerateSlotsFullyBookedDay(t *testing.T) {
	day := workingDay()
	busy := []Busy{
		{Interval: Interval{Start: 9 * 60, End: 18 * 60}, Buffered: true},
	}

	assert.Empty(t, GenerateSlots(day, busy, 0, 30))
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	day := workingDay()
	day.Breaks = []models.BreakInterval{{Start: 12 * 60, End: 12*60 + 30}}
	busy := []Busy{
		{Interval: Interval{Start: 14 * 60, End: 15 * 60}, Buffered: true},
	}

	first := GenerateSlots(day, busy, 10, 45)
	second := GenerateSlots(day, busy, 10, 45)

	assert.Equal(t, first, second)
}
