package models

import "time"

// SessionType is a bookable service offered by the practitioner.
type SessionType struct {
	ID              string    `bson:"id" json:"id"`
	PractitionerID  string    `bson:"practitionerId" json:"practitionerId"`
	Name            string    `bson:"name" json:"name"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64   `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
