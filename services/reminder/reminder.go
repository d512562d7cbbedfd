// File: services/reminder/reminder.go
package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"practiva/config"
)

// TypeAppointmentReminder is the asynq task type for appointment reminders.
const TypeAppointmentReminder = "reminder:appointment"

// DefaultLead is how far before the appointment start the reminder fires.
const DefaultLead = 24 * time.Hour

// Payload is the reminder task body.
type Payload struct {
	AppointmentID string    `json:"appointmentId"`
	ClientName    string    `json:"clientName"`
	ClientEmail   string    `json:"clientEmail"`
	SessionName   string    `json:"sessionName"`
	StartsAt      time.Time `json:"startsAt"`
}

// Scheduler enqueues appointment reminders. Enqueue failures are the
// caller's to log; a booking never fails because of its reminder.
type Scheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, p Payload) error
}

// AsynqScheduler schedules reminders on the asynq queue backed by Redis.
type AsynqScheduler struct {
	client *asynq.Client
	lead   time.Duration
	logger *zap.Logger
}

// NewAsynqScheduler builds a scheduler using the configured Redis queue DB.
func NewAsynqScheduler(logger *zap.Logger) *AsynqScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqScheduler{client: client, lead: DefaultLead, logger: logger}
}

func (s *AsynqScheduler) ScheduleAppointmentReminder(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	fireAt := p.StartsAt.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		// Short-notice booking: fire as soon as the worker picks it up.
		fireAt = time.Now()
	}

	task := asynq.NewTask(TypeAppointmentReminder, body)
	info, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}
	s.logger.Debug("reminder scheduled",
		zap.String("appointmentId", p.AppointmentID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

// Close releases the underlying asynq client.
func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}
