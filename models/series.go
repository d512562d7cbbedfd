package models

import "time"

// SeriesStatus enumerates treatment-series states.
type SeriesStatus string

const (
	SeriesActive    SeriesStatus = "active"
	SeriesCompleted SeriesStatus = "completed"
)

// TreatmentSeries is a multi-session treatment plan. Appointments reference
// it by ID; the series is mutated only through the completion cascade.
type TreatmentSeries struct {
	ID             string       `bson:"id" json:"id"`
	PractitionerID string       `bson:"practitionerId" json:"practitionerId"`
	ClientID       string       `bson:"clientId" json:"clientId"`
	Title          string       `bson:"title" json:"title"`
	TotalSessions  int          `bson:"totalSessions" json:"totalSessions"`
	CurrentSession int          `bson:"currentSession" json:"currentSession"`
	Status         SeriesStatus `bson:"status" json:"status"`
	CreatedAt      time.Time    `bson:"createdAt" json:"createdAt"`
	CompletedAt    *time.Time   `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
