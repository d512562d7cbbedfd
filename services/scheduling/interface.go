// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	appointmentRepo "practiva/database/repository/appointment"
	availabilityRepo "practiva/database/repository/availability"
	clientRepo "practiva/database/repository/client"
	seriesRepo "practiva/database/repository/series"
	sessionTypeRepo "practiva/database/repository/sessiontype"
	"practiva/models"
	"practiva/services/reminder"
)

// SlotQuery identifies one availability lookup.
type SlotQuery struct {
	PractitionerID string
	SessionTypeID  string
	Date           string // "2006-01-02"
}

// TransitionResult carries the outcome of a status transition. The
// appointment change and the series cascade are two saga steps: SeriesErr
// reports the second step's failure independently so the caller can retry
// the series update without re-running the transition.
type TransitionResult struct {
	Appointment *models.Appointment
	SeriesErr   error
}

// SchedulingService is the engine's synchronous request/response surface.
type SchedulingService interface {
	GetDaySlots(ctx context.Context, q SlotQuery) ([]string, error)
	BookAppointment(ctx context.Context, in models.BookingInput) (*models.Appointment, error)
	Reschedule(ctx context.Context, appointmentID, date, clock string) (*models.Appointment, error)
	TransitionStatus(ctx context.Context, appointmentID string, to models.AppointmentStatus) (*TransitionResult, error)
	GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)
	ListCalendar(ctx context.Context, practitionerID string, view models.CalendarView, anchor time.Time) (models.CalendarRange, []models.Appointment, error)

	GetAvailability(ctx context.Context, practitionerID string) (*models.WeeklyAvailability, error)
	UpsertAvailability(ctx context.Context, wa *models.WeeklyAvailability) error
	CreateTimeBlock(ctx context.Context, block *models.TimeBlock) error
	DeleteTimeBlock(ctx context.Context, practitionerID, blockID string) error
}

// DefaultSchedulingService implements SchedulingService over the Mongo
// repositories, with an optional Redis cache for slot queries and a
// best-effort reminder scheduler.
type DefaultSchedulingService struct {
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Series       seriesRepo.SeriesRepository
	Clients      clientRepo.ClientRepository
	SessionTypes sessionTypeRepo.SessionTypeRepository

	Cache     *redis.Client // nil disables slot caching
	Reminders reminder.Scheduler
	Logger    *zap.Logger

	// Now is the clock; tests override it. Nil means time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
