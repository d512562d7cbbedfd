package models

// ClientInput carries the client identity fields submitted with a public
// booking request.
type ClientInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// BookingInput is the public booking request payload.
type BookingInput struct {
	PractitionerID string      `json:"practitionerId" binding:"required"`
	SessionTypeID  string      `json:"sessionTypeId" binding:"required"`
	Date           string      `json:"date" binding:"required"` // "2006-01-02"
	Time           string      `json:"time" binding:"required"` // "15:04", 24-hour
	Client         ClientInput `json:"client" binding:"required"`
	SeriesID       string      `json:"seriesId"`
	SessionNumber  int         `json:"sessionNumber"`
}

// AppointmentPatchInput updates an appointment: either a status transition
// or a reschedule, never both in one call.
type AppointmentPatchInput struct {
	Status string `json:"status"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}
