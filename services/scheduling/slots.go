package scheduling

import "practiva/models"

// Busy is an already-occupied interval consumed by slot generation.
// Buffered intervals (appointments) are dilated by the practitioner's
// buffer during conflict checks; unbuffered ones (time blocks) obstruct
// exactly their own span.
type Busy struct {
	Interval
	Buffered bool
}

// GenerateSlots computes the bookable start times for one calendar day.
// Candidates are enumerated on a fixed 30-minute stride from the day's
// opening time while the full session still fits before closing. A
// candidate is dropped when it overlaps a break, or conflicts with a busy
// interval after buffer dilation. The result is ascending and, for a
// disabled day, empty. Pure: identical inputs always yield identical
// output.
func GenerateSlots(day models.DaySchedule, busy []Busy, bufferMinutes, durationMinutes int) []int {
	if !day.Enabled || durationMinutes <= 0 {
		return nil
	}

	var slots []int
	for start := day.StartTime; start+durationMinutes <= day.EndTime; start += SlotStride {
		candidate := Interval{Start: start, End: start + durationMinutes}
		if overlapsBreak(candidate, day.Breaks) {
			continue
		}
		if conflictsBusy(candidate, busy, bufferMinutes) {
			continue
		}
		slots = append(slots, start)
	}
	return slots
}

func overlapsBreak(candidate Interval, breaks []models.BreakInterval) bool {
	for _, br := range breaks {
		if candidate.Overlaps(Interval{Start: br.Start, End: br.End}) {
			return true
		}
	}
	return false
}

func conflictsBusy(candidate Interval, busy []Busy, bufferMinutes int) bool {
	for _, b := range busy {
		pad := 0
		if b.Buffered {
			pad = bufferMinutes
		}
		if candidate.Start < b.End+pad && candidate.End+pad > b.Start {
			return true
		}
	}
	return false
}
