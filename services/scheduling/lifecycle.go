package scheduling

import "practiva/models"

// allowedTransitions is the appointment lifecycle table. Absent sources
// are terminal and admit no transition.
var allowedTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusRequested: {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCheckedIn, models.StatusCancelled, models.StatusNoShow},
	models.StatusCheckedIn: {models.StatusCompleted},
}

// CanTransition reports whether the lifecycle permits moving from one
// status to another.
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, target := range allowedTransitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// CheckTransition validates a requested status change, returning a
// ValidationError for unknown statuses and a ConflictError for moves the
// lifecycle forbids.
func CheckTransition(from, to models.AppointmentStatus) error {
	if !to.Valid() {
		return NewValidationError("unknown appointment status %q", to)
	}
	if from.Terminal() {
		return NewConflictError("appointment is already %s and cannot change status", from)
	}
	if !CanTransition(from, to) {
		return NewConflictError("cannot transition appointment from %s to %s", from, to)
	}
	return nil
}

// CheckReschedule validates that an appointment in the given status may
// still have its times changed. Terminal appointments are immutable except
// for administrative correction, which does not pass through here.
func CheckReschedule(status models.AppointmentStatus) error {
	if status.Terminal() {
		return NewConflictError("appointment is %s and cannot be rescheduled", status)
	}
	return nil
}

// CompletesSeries reports whether completing this appointment must cascade
// into completing its treatment series: it references a series and holds
// the series' final session number.
func CompletesSeries(appt *models.Appointment, series *models.TreatmentSeries) bool {
	if appt.SeriesID == "" || series == nil {
		return false
	}
	return appt.SessionNumber == series.TotalSessions
}
