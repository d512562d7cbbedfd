package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"practiva/config"
	appointmentRepo "practiva/database/repository/appointment"
	"practiva/models"
	"practiva/services/notification"
	"practiva/services/reminder"
	"practiva/utils"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(appts appointmentRepo.AppointmentRepository, sink notification.Sink) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(reminder.TypeAppointmentReminder, handleReminderTask(appts, sink, logger))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				break
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Fatal("reminder worker retries exhausted")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// handleReminderTask delivers one scheduled reminder. The appointment is
// re-read at fire time so reminders for cancelled or no-show bookings
// are dropped silently.
func handleReminderTask(appts appointmentRepo.AppointmentRepository, sink notification.Sink, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p reminder.Payload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		appt, err := appts.GetByID(ctx, p.AppointmentID)
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.Warn("reminder for missing appointment dropped",
				zap.String("appointmentId", p.AppointmentID))
			return nil
		}
		if err != nil {
			return err
		}
		if appt.Status == models.StatusCancelled || appt.Status == models.StatusNoShow {
			logger.Debug("reminder dropped for inactive appointment",
				zap.String("appointmentId", appt.ID),
				zap.String("status", string(appt.Status)),
			)
			return nil
		}

		if err := sink.DeliverReminder(ctx, p); err != nil {
			logger.Error("reminder delivery failed",
				zap.String("appointmentId", appt.ID),
				zap.Error(err),
			)
			return err
		}

		logger.Info("reminder delivered",
			zap.String("appointmentId", appt.ID),
			zap.Time("startsAt", p.StartsAt),
		)
		return nil
	}
}
