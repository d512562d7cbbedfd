// File: services/scheduling/service_updates.go
package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "practiva/database/repository/appointment"
	"practiva/models"
)

// Reschedule moves a non-terminal appointment to a new start, preserving
// its duration. The new time must land inside the working day, clear of
// breaks, and passes through the same conflict-checked write as a booking;
// practitioner-initiated times (for example from a drag selection) are not
// forced onto the public slot grid.
func (s *DefaultSchedulingService) Reschedule(ctx context.Context, appointmentID, date, clock string) (*models.Appointment, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	startMinute, err := ParseClock(clock)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}

	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("appointment", appointmentID)
		}
		return nil, NewDependencyError("load appointment", err)
	}
	if err := CheckReschedule(appt.Status); err != nil {
		return nil, err
	}

	wa, err := s.Availability.GetByPractitioner(ctx, appt.PractitionerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("practitioner", appt.PractitionerID)
		}
		return nil, NewDependencyError("load availability", err)
	}

	duration := appt.EndsAt.Sub(appt.StartsAt)
	durationMinutes := int(duration / time.Minute)

	schedule := wa.DayFor(int(day.Weekday()))
	if schedule == nil || !schedule.Enabled {
		return nil, NewRuleError("practitioner does not work on %s", day.Weekday())
	}
	endMinute := startMinute + durationMinutes
	if startMinute < schedule.StartTime || endMinute > schedule.EndTime {
		return nil, NewRuleError("new time %s falls outside working hours on %s", clock, date)
	}
	for _, br := range schedule.Breaks {
		if startMinute < br.End && endMinute > br.Start {
			return nil, NewRuleError("new time %s overlaps a break on %s", clock, date)
		}
	}

	newStart := AtMinute(day, startMinute)
	newEnd := newStart.Add(duration)

	updated, err := s.Appointments.UpdateTimesConflictChecked(ctx, appointmentID, newStart, newEnd, wa.BufferMinutes)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrConflict):
			return nil, NewConflictError("new time %s on %s conflicts with an existing booking", clock, date)
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, NewNotFoundError("appointment", appointmentID)
		default:
			return nil, NewDependencyError("reschedule appointment", err)
		}
	}

	s.invalidateSlotCache(ctx, appt.PractitionerID, FormatDate(appt.StartsAt))
	s.invalidateSlotCache(ctx, appt.PractitionerID, date)

	s.Logger.Info("appointment rescheduled",
		zap.String("appointmentId", appointmentID),
		zap.Time("startsAt", newStart),
	)
	return updated, nil
}

// TransitionStatus applies a lifecycle transition. Completing the final
// session of a treatment series cascades into completing the series; that
// second saga step is best-effort and its failure is reported in
// TransitionResult.SeriesErr, never folded into the transition's own
// outcome.
func (s *DefaultSchedulingService) TransitionStatus(ctx context.Context, appointmentID string, to models.AppointmentStatus) (*TransitionResult, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("appointment", appointmentID)
		}
		return nil, NewDependencyError("load appointment", err)
	}
	if err := CheckTransition(appt.Status, to); err != nil {
		return nil, err
	}

	updated, err := s.Appointments.UpdateStatus(ctx, appointmentID, appt.Status, to)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrConflict):
			return nil, NewConflictError("appointment status changed concurrently; reload and retry")
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, NewNotFoundError("appointment", appointmentID)
		default:
			return nil, NewDependencyError("update appointment status", err)
		}
	}

	result := &TransitionResult{Appointment: updated}
	if to == models.StatusCompleted && appt.SeriesID != "" {
		result.SeriesErr = s.cascadeSeriesProgress(ctx, updated)
	}

	s.Logger.Info("appointment status changed",
		zap.String("appointmentId", appointmentID),
		zap.String("from", string(appt.Status)),
		zap.String("to", string(to)),
	)
	return result, nil
}

// cascadeSeriesProgress is step two of the completion saga. It runs after
// the appointment transition has committed and returns its own failure
// for independent retry.
func (s *DefaultSchedulingService) cascadeSeriesProgress(ctx context.Context, appt *models.Appointment) error {
	series, err := s.Series.GetByID(ctx, appt.SeriesID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError("treatment series", appt.SeriesID)
		}
		return NewDependencyError("load series", err)
	}

	if appt.SessionNumber > series.CurrentSession {
		if err := s.Series.SetCurrentSession(ctx, series.ID, appt.SessionNumber); err != nil {
			return NewDependencyError("update series progress", err)
		}
	}
	if CompletesSeries(appt, series) {
		if err := s.Series.MarkCompleted(ctx, series.ID, s.now().UTC()); err != nil {
			return NewDependencyError("complete series", err)
		}
		s.Logger.Info("treatment series completed", zap.String("seriesId", series.ID))
	}
	return nil
}

// GetAppointment loads one appointment by id.
func (s *DefaultSchedulingService) GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("appointment", appointmentID)
		}
		return nil, NewDependencyError("load appointment", err)
	}
	return appt, nil
}

// ListCalendar resolves the requested view into a range and loads the
// appointments inside it; the list view returns the most recent page
// instead of a date-bounded set.
func (s *DefaultSchedulingService) ListCalendar(ctx context.Context, practitionerID string, view models.CalendarView, anchor time.Time) (models.CalendarRange, []models.Appointment, error) {
	cr, err := ResolveRange(view, anchor)
	if err != nil {
		return models.CalendarRange{}, nil, err
	}

	var appts []models.Appointment
	if cr.Bounded {
		appts, err = s.Appointments.ListRange(ctx, practitionerID, cr.Start, cr.End.AddDate(0, 0, 1))
	} else {
		appts, err = s.Appointments.ListRecent(ctx, practitionerID, ListPageSize)
	}
	if err != nil {
		return models.CalendarRange{}, nil, NewDependencyError("list appointments", err)
	}
	return cr, appts, nil
}

// GetAvailability loads the practitioner's weekly availability.
func (s *DefaultSchedulingService) GetAvailability(ctx context.Context, practitionerID string) (*models.WeeklyAvailability, error) {
	wa, err := s.Availability.GetByPractitioner(ctx, practitionerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("practitioner", practitionerID)
		}
		return nil, NewDependencyError("load availability", err)
	}
	return wa, nil
}

// UpsertAvailability validates and stores the weekly schedule.
// Configuration errors (overlapping breaks, inverted windows) are caught
// here, never during slot generation.
func (s *DefaultSchedulingService) UpsertAvailability(ctx context.Context, wa *models.WeeklyAvailability) error {
	if err := ValidateWeeklyAvailability(wa); err != nil {
		return err
	}
	if err := s.Availability.Upsert(ctx, wa); err != nil {
		return NewDependencyError("store availability", err)
	}
	s.Logger.Info("availability updated", zap.String("practitionerId", wa.PractitionerID))
	return nil
}

// CreateTimeBlock declares a personal unavailable interval.
func (s *DefaultSchedulingService) CreateTimeBlock(ctx context.Context, block *models.TimeBlock) error {
	if !block.StartsAt.Before(block.EndsAt) {
		return NewValidationError("time block must start before it ends")
	}
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	block.CreatedAt = s.now().UTC()
	if err := s.Appointments.CreateTimeBlock(ctx, block); err != nil {
		return NewDependencyError("create time block", err)
	}
	return nil
}

// DeleteTimeBlock removes a declared unavailable interval.
func (s *DefaultSchedulingService) DeleteTimeBlock(ctx context.Context, practitionerID, blockID string) error {
	if err := s.Appointments.DeleteTimeBlock(ctx, practitionerID, blockID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError("time block", blockID)
		}
		return NewDependencyError("delete time block", err)
	}
	return nil
}
