package scheduling

import (
	"sort"

	"practiva/models"
)

// ValidateWeeklyAvailability enforces the configuration-write invariants of
// a weekly schedule: exactly seven day entries in weekday order, sane
// working windows, breaks inside the window and non-overlapping, a
// non-negative buffer and a positive booking horizon. Violations return a
// ValidationError; generation never re-checks these.
func ValidateWeeklyAvailability(wa *models.WeeklyAvailability) error {
	if wa == nil {
		return NewValidationError("availability payload required")
	}
	if len(wa.Days) != 7 {
		return NewValidationError("availability must configure exactly 7 days, got %d", len(wa.Days))
	}
	for i, day := range wa.Days {
		if day.DayOfWeek != i {
			return NewValidationError("day entry %d must carry dayOfWeek %d, got %d", i, i, day.DayOfWeek)
		}
		if err := validateDay(day); err != nil {
			return err
		}
	}
	if wa.BufferMinutes < 0 {
		return NewValidationError("bufferMinutes must not be negative")
	}
	if wa.BookingWindowDays < 1 {
		return NewValidationError("bookingWindowDays must be at least 1")
	}
	return nil
}

func validateDay(day models.DaySchedule) error {
	if !day.Enabled {
		return nil
	}
	if day.StartTime < 0 || day.EndTime > MinutesPerDay || day.StartTime >= day.EndTime {
		return NewValidationError("day %d: working window [%d, %d) is invalid", day.DayOfWeek, day.StartTime, day.EndTime)
	}

	breaks := make([]models.BreakInterval, len(day.Breaks))
	copy(breaks, day.Breaks)
	sort.Slice(breaks, func(i, j int) bool { return breaks[i].Start < breaks[j].Start })

	prevEnd := -1
	for _, br := range breaks {
		if br.Start >= br.End {
			return NewValidationError("day %d: break [%d, %d) is empty or inverted", day.DayOfWeek, br.Start, br.End)
		}
		if br.Start < day.StartTime || br.End > day.EndTime {
			return NewValidationError("day %d: break [%d, %d) falls outside the working window", day.DayOfWeek, br.Start, br.End)
		}
		if br.Start < prevEnd {
			return NewValidationError("day %d: breaks overlap at minute %d", day.DayOfWeek, br.Start)
		}
		prevEnd = br.End
	}
	return nil
}
