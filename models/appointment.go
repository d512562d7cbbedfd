package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusRequested AppointmentStatus = "requested"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCheckedIn AppointmentStatus = "checked_in"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Terminal reports whether the status permits no further transitions.
func (s AppointmentStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Valid reports whether s is a known lifecycle status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCheckedIn,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment is a scheduled meeting between the practitioner and a client.
type Appointment struct {
	ID             string            `bson:"id" json:"id"`
	PractitionerID string            `bson:"practitionerId" json:"practitionerId"`
	ClientID       string            `bson:"clientId" json:"clientId"`
	SessionTypeID  string            `bson:"sessionTypeId" json:"sessionTypeId"`
	StartsAt       time.Time         `bson:"startsAt" json:"startsAt"`
	EndsAt         time.Time         `bson:"endsAt" json:"endsAt"`
	Status         AppointmentStatus `bson:"status" json:"status"`
	SeriesID       string            `bson:"seriesId,omitempty" json:"seriesId,omitempty"`
	SessionNumber  int               `bson:"sessionNumber,omitempty" json:"sessionNumber,omitempty"`
	Notes          string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// TimeBlock is a practitioner-declared unavailable interval. It occupies
// calendar time like an appointment but carries no client reference and is
// consumed by slot generation with zero buffer.
type TimeBlock struct {
	ID             string    `bson:"id" json:"id"`
	PractitionerID string    `bson:"practitionerId" json:"practitionerId"`
	StartsAt       time.Time `bson:"startsAt" json:"startsAt"`
	EndsAt         time.Time `bson:"endsAt" json:"endsAt"`
	Reason         string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// OccupiedInterval is the read-side projection used by slot generation:
// one busy span of practitioner time, with or without buffer applied.
type OccupiedInterval struct {
	StartsAt time.Time `bson:"startsAt" json:"startsAt"`
	EndsAt   time.Time `bson:"endsAt" json:"endsAt"`
	// Buffered intervals (appointments) are dilated by the practitioner's
	// buffer during conflict checks; time blocks are not.
	Buffered bool `bson:"buffered" json:"buffered"`
}
