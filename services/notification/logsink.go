// File: services/notification/logsink.go
package notification

import (
	"context"

	"go.uber.org/zap"

	"practiva/services/reminder"
)

// LogSink records deliveries in the application log. It stands in for the
// real outbound collaborator in development and tests.
type LogSink struct {
	Logger *zap.Logger
}

func (s *LogSink) DeliverReminder(_ context.Context, p reminder.Payload) error {
	s.Logger.Info("appointment reminder delivered",
		zap.String("appointmentId", p.AppointmentID),
		zap.String("clientEmail", p.ClientEmail),
		zap.String("session", p.SessionName),
		zap.Time("startsAt", p.StartsAt),
	)
	return nil
}
