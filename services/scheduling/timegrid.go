package scheduling

import (
	"fmt"
	"time"
)

const (
	// MinutesPerDay bounds every minute-of-day value.
	MinutesPerDay = 24 * 60

	// SlotStride is the quantization of generated slot start times.
	SlotStride = 30

	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Interval is a half-open span of minutes within one day.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether the two intervals share any time.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// ParseClock parses a 24-hour "HH:MM" string into minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as 24-hour "HH:MM".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate renders a calendar date as "YYYY-MM-DD".
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AtMinute returns the absolute timestamp for a minute of the given day.
func AtMinute(day time.Time, minute int) time.Time {
	return Midnight(day).Add(time.Duration(minute) * time.Minute)
}

// MinuteOfDay converts an absolute timestamp into minutes from its midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DayInterval projects an absolute time span onto the given day, returning
// the overlapping minute interval and whether any overlap exists. Spans
// crossing midnight are clipped to the day's bounds.
func DayInterval(day time.Time, startsAt, endsAt time.Time) (Interval, bool) {
	dayStart := Midnight(day)
	dayEnd := dayStart.Add(MinutesPerDay * time.Minute)
	if !startsAt.Before(dayEnd) || !endsAt.After(dayStart) {
		return Interval{}, false
	}
	iv := Interval{Start: 0, End: MinutesPerDay}
	if startsAt.After(dayStart) {
		iv.Start = int(startsAt.Sub(dayStart) / time.Minute)
	}
	if endsAt.Before(dayEnd) {
		iv.End = int(endsAt.Sub(dayStart) / time.Minute)
	}
	return iv, iv.End > iv.Start
}
