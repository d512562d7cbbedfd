// File: services/scheduling/service.go
package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "practiva/database/repository/appointment"
	"practiva/models"
	"practiva/services/reminder"
)

const slotCacheTTL = 60 * time.Second

func slotCacheKey(practitionerID, date string, durationMinutes int) string {
	return fmt.Sprintf("slots:%s:%s:%dm", practitionerID, date, durationMinutes)
}

// GetDaySlots returns the bookable "HH:MM" start times for one date. An
// empty list is a real answer (disabled day, fully booked, outside the
// booking horizon); failures surface as errors, never as empty lists.
func (s *DefaultSchedulingService) GetDaySlots(ctx context.Context, q SlotQuery) ([]string, error) {
	day, err := ParseDate(q.Date)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}

	sessionType, err := s.SessionTypes.GetByID(ctx, q.SessionTypeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("session type", q.SessionTypeID)
		}
		return nil, NewDependencyError("load session type", err)
	}

	if s.Cache != nil {
		key := slotCacheKey(q.PractitionerID, q.Date, sessionType.DurationMinutes)
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var slots []string
			if json.Unmarshal([]byte(cached), &slots) == nil {
				return slots, nil
			}
		}
	}

	slots, err := s.computeDaySlots(ctx, q.PractitionerID, day, sessionType.DurationMinutes)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		key := slotCacheKey(q.PractitionerID, q.Date, sessionType.DurationMinutes)
		if data, err := json.Marshal(slots); err == nil {
			if err := s.Cache.Set(ctx, key, data, slotCacheTTL).Err(); err != nil {
				s.Logger.Debug("slot cache write failed", zap.Error(err))
			}
		}
	}
	return slots, nil
}

// computeDaySlots is the uncached generation pass shared by availability
// queries and booking revalidation.
func (s *DefaultSchedulingService) computeDaySlots(ctx context.Context, practitionerID string, day time.Time, durationMinutes int) ([]string, error) {
	wa, err := s.Availability.GetByPractitioner(ctx, practitionerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("practitioner", practitionerID)
		}
		return nil, NewDependencyError("load availability", err)
	}

	now := s.now()
	today := Midnight(now)
	horizon := today.AddDate(0, 0, wa.BookingWindowDays)
	if day.Before(today) || day.After(horizon) {
		return []string{}, nil
	}

	schedule := wa.DayFor(int(day.Weekday()))
	if schedule == nil || !schedule.Enabled {
		return []string{}, nil
	}

	dayStart := Midnight(day)
	dayEnd := dayStart.AddDate(0, 0, 1)
	occupied, err := s.Appointments.ListOccupied(ctx, practitionerID, dayStart, dayEnd)
	if err != nil {
		return nil, NewDependencyError("list occupied intervals", err)
	}

	busy := make([]Busy, 0, len(occupied))
	for _, occ := range occupied {
		iv, ok := DayInterval(day, occ.StartsAt, occ.EndsAt)
		if !ok {
			continue
		}
		busy = append(busy, Busy{Interval: iv, Buffered: occ.Buffered})
	}

	starts := GenerateSlots(*schedule, busy, wa.BufferMinutes, durationMinutes)

	formatted := make([]string, 0, len(starts))
	for _, start := range starts {
		// For today, drop starts that have already passed.
		if dayStart.Equal(today) && !AtMinute(day, start).After(now) {
			continue
		}
		formatted = append(formatted, FormatClock(start))
	}
	return formatted, nil
}

// BookAppointment validates a public booking request against a fresh
// generation pass and commits it through the conflict-checked insert. A
// race lost to a concurrent booking fails with a ConflictError; it is
// never silently double-booked.
func (s *DefaultSchedulingService) BookAppointment(ctx context.Context, in models.BookingInput) (*models.Appointment, error) {
	day, err := ParseDate(in.Date)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	startMinute, err := ParseClock(in.Time)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}

	sessionType, err := s.SessionTypes.GetByID(ctx, in.SessionTypeID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("session type", in.SessionTypeID)
		}
		return nil, NewDependencyError("load session type", err)
	}

	wa, err := s.Availability.GetByPractitioner(ctx, in.PractitionerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("practitioner", in.PractitionerID)
		}
		return nil, NewDependencyError("load availability", err)
	}

	today := Midnight(s.now())
	if day.Before(today) {
		return nil, NewRuleError("cannot book a past date")
	}
	if day.After(today.AddDate(0, 0, wa.BookingWindowDays)) {
		return nil, NewRuleError("date is beyond the %d-day booking window", wa.BookingWindowDays)
	}
	if schedule := wa.DayFor(int(day.Weekday())); schedule == nil || !schedule.Enabled {
		return nil, NewRuleError("practitioner does not work on %s", day.Weekday())
	}

	slots, err := s.computeDaySlots(ctx, in.PractitionerID, day, sessionType.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if !containsSlot(slots, FormatClock(startMinute)) {
		return nil, NewConflictError("requested time %s is not available on %s", in.Time, in.Date)
	}

	var series *models.TreatmentSeries
	if in.SeriesID != "" {
		series, err = s.Series.GetByID(ctx, in.SeriesID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, NewNotFoundError("treatment series", in.SeriesID)
			}
			return nil, NewDependencyError("load series", err)
		}
		if series.Status != models.SeriesActive {
			return nil, NewRuleError("treatment series %s is already completed", in.SeriesID)
		}
		if in.SessionNumber < 1 || in.SessionNumber > series.TotalSessions {
			return nil, NewValidationError("sessionNumber %d is outside the series' %d sessions", in.SessionNumber, series.TotalSessions)
		}
	}

	client, err := s.Clients.FindOrCreate(ctx, in.Client.Name, in.Client.Email, in.Client.Phone)
	if err != nil {
		return nil, NewDependencyError("resolve client", err)
	}

	nowUTC := s.now().UTC()
	appt := &models.Appointment{
		ID:             uuid.New().String(),
		PractitionerID: in.PractitionerID,
		ClientID:       client.ID,
		SessionTypeID:  sessionType.ID,
		StartsAt:       AtMinute(day, startMinute),
		EndsAt:         AtMinute(day, startMinute+sessionType.DurationMinutes),
		Status:         models.StatusRequested,
		SeriesID:       in.SeriesID,
		SessionNumber:  in.SessionNumber,
		CreatedAt:      nowUTC,
		UpdatedAt:      nowUTC,
	}

	if err := s.Appointments.InsertConflictChecked(ctx, appt, wa.BufferMinutes); err != nil {
		if errors.Is(err, appointmentRepo.ErrConflict) {
			return nil, NewConflictError("slot %s on %s was just taken", in.Time, in.Date)
		}
		return nil, NewDependencyError("create appointment", err)
	}

	s.invalidateSlotCache(ctx, in.PractitionerID, in.Date)

	if s.Reminders != nil {
		payload := reminder.Payload{
			AppointmentID: appt.ID,
			ClientName:    client.Name,
			ClientEmail:   client.Email,
			SessionName:   sessionType.Name,
			StartsAt:      appt.StartsAt,
		}
		if err := s.Reminders.ScheduleAppointmentReminder(ctx, payload); err != nil {
			// Best-effort: the booking stands even if its reminder doesn't.
			s.Logger.Warn("failed to schedule reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	s.Logger.Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("practitionerId", appt.PractitionerID),
		zap.Time("startsAt", appt.StartsAt),
	)
	return appt, nil
}

func containsSlot(slots []string, clock string) bool {
	for _, s := range slots {
		if s == clock {
			return true
		}
	}
	return false
}

// invalidateSlotCache drops every cached duration for the date. A booking
// at one duration shifts the open slots of all the others, so the whole
// date is scanned out rather than the booked key alone.
func (s *DefaultSchedulingService) invalidateSlotCache(ctx context.Context, practitionerID, date string) {
	if s.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("slots:%s:%s:*", practitionerID, date)
	var cursor uint64
	for {
		keys, next, err := s.Cache.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			s.Logger.Debug("slot cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
				s.Logger.Debug("slot cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
