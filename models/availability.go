package models

// BreakInterval is a pause inside a working day, expressed in minutes
// from midnight.
type BreakInterval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// DaySchedule configures one weekday of a practitioner's recurring week.
type DaySchedule struct {
	DayOfWeek int             `bson:"dayOfWeek" json:"dayOfWeek"` // 0=Sunday ... 6=Saturday
	Enabled   bool            `bson:"enabled" json:"enabled"`
	StartTime int             `bson:"startTime" json:"startTime"` // minutes from midnight
	EndTime   int             `bson:"endTime" json:"endTime"`     // minutes from midnight
	Breaks    []BreakInterval `bson:"breaks,omitempty" json:"breaks,omitempty"`
}

// WeeklyAvailability is a practitioner's full recurring schedule plus the
// global booking rules applied during slot generation.
type WeeklyAvailability struct {
	PractitionerID    string        `bson:"practitionerId" json:"practitionerId"`
	Days              []DaySchedule `bson:"days" json:"days"` // exactly 7, index 0=Sunday
	BufferMinutes     int           `bson:"bufferMinutes" json:"bufferMinutes"`
	BookingWindowDays int           `bson:"bookingWindowDays" json:"bookingWindowDays"`
}

// DayFor returns the schedule for the given weekday index, or nil when the
// availability record is malformed.
func (wa *WeeklyAvailability) DayFor(weekday int) *DaySchedule {
	for i := range wa.Days {
		if wa.Days[i].DayOfWeek == weekday {
			return &wa.Days[i]
		}
	}
	return nil
}
