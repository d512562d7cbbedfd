// File: practiva/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"practiva/config"
	"practiva/cron"
	"practiva/database"
	appointmentRepo "practiva/database/repository/appointment"
	availabilityRepo "practiva/database/repository/availability"
	clientRepo "practiva/database/repository/client"
	seriesRepo "practiva/database/repository/series"
	sessionTypeRepo "practiva/database/repository/sessiontype"
	"practiva/handlers"
	"practiva/routes"
	"practiva/services/notification"
	"practiva/services/reminder"
	"practiva/services/scheduling"
	"practiva/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	serRepo := seriesRepo.NewMongoSeriesRepo()
	cliRepo := clientRepo.NewMongoClientRepo()
	typeRepo := sessionTypeRepo.NewMongoSessionTypeRepo()

	// services.
	reminderScheduler := reminder.NewAsynqScheduler(logger)
	defer reminderScheduler.Close()

	schedulingService := &scheduling.DefaultSchedulingService{
		Availability: availRepo,
		Appointments: apptRepo,
		Series:       serRepo,
		Clients:      cliRepo,
		SessionTypes: typeRepo,
		Cache:        utils.GetCacheClient(),
		Reminders:    reminderScheduler,
		Logger:       logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:      handlers.NewBookingHandler(schedulingService, logger),
		Appointments: handlers.NewAppointmentHandler(schedulingService, logger),
		Availability: handlers.NewAvailabilityHandler(schedulingService, logger),
		Calendar:     handlers.NewCalendarHandler(schedulingService, logger),
		SessionTypes: handlers.NewSessionTypeHandler(typeRepo, logger),
		Series:       handlers.NewSeriesHandler(serRepo, cliRepo, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)
	cron.InitReminderWorker(apptRepo, &notification.LogSink{Logger: logger})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
