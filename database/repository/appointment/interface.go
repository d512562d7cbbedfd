// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"practiva/database"
	"practiva/models"
)

// ErrConflict is returned when a conflict-checked write would overlap an
// existing appointment or time block. Two racing bookings for the same
// span cannot both succeed; the loser observes this error.
var ErrConflict = errors.New("appointment: slot conflict")

// AppointmentRepository persists appointments and practitioner time
// blocks, and serves the interval reads slot generation depends on.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	// InsertConflictChecked inserts the appointment inside a transaction
	// that re-checks for overlap (with buffer dilation against other
	// appointments, none against time blocks). Returns ErrConflict when
	// the write would double-book.
	InsertConflictChecked(ctx context.Context, appt *models.Appointment, bufferMinutes int) error

	// UpdateTimesConflictChecked moves an appointment under the same
	// overlap re-check, excluding the appointment itself.
	UpdateTimesConflictChecked(ctx context.Context, id string, startsAt, endsAt time.Time, bufferMinutes int) (*models.Appointment, error)

	// UpdateStatus moves the appointment between lifecycle statuses. The
	// write asserts the expected current status, so a transition racing
	// another observes ErrConflict instead of overwriting it.
	UpdateStatus(ctx context.Context, id string, from, to models.AppointmentStatus) (*models.Appointment, error)

	// ListOccupied returns every busy span in [from, to): appointments in
	// a blocking status plus time blocks, flagged for buffer dilation.
	ListOccupied(ctx context.Context, practitionerID string, from, to time.Time) ([]models.OccupiedInterval, error)

	ListRange(ctx context.Context, practitionerID string, from, to time.Time) ([]models.Appointment, error)
	ListRecent(ctx context.Context, practitionerID string, limit int) ([]models.Appointment, error)

	CreateTimeBlock(ctx context.Context, block *models.TimeBlock) error
	DeleteTimeBlock(ctx context.Context, practitionerID, blockID string) error
}

type mongoAppointmentRepo struct {
	apptColl  *mongo.Collection
	blockColl *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		apptColl:  database.Collection("appointments"),
		blockColl: database.Collection("time_blocks"),
	}
}

// blockingStatuses are the appointment statuses that occupy calendar time.
// Cancelled and no-show appointments free their span.
var blockingStatuses = []models.AppointmentStatus{
	models.StatusRequested,
	models.StatusConfirmed,
	models.StatusCheckedIn,
	models.StatusCompleted,
}
