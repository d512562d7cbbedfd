package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"practiva/handlers"
	"practiva/middleware"
	"practiva/utils"
)

// RegisterBookingRoutes sets up the public booking surface used by the
// client-facing booking page.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.Use(middleware.RateLimitMiddleware())
		booking.GET("/slots", hb.Booking.GetSlots)
		booking.POST("", hb.Booking.CreateBooking)
	}
}

// RegisterPractitionerRoutes sets up the authenticated practitioner surface.
func RegisterPractitionerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/practitioner")
	{
		api.Use(middleware.PractitionerAuthMiddleware())
		api.GET("/availability", hb.Availability.GetAvailability)
		api.PUT("/availability", hb.Availability.PutAvailability)
		api.POST("/time-blocks", hb.Availability.CreateTimeBlock)
		api.DELETE("/time-blocks/:id", hb.Availability.DeleteTimeBlock)
		api.GET("/calendar", hb.Calendar.GetCalendar)
		api.GET("/session-types", hb.SessionTypes.ListSessionTypes)
		api.POST("/session-types", hb.SessionTypes.CreateSessionType)
		api.DELETE("/session-types/:id", hb.SessionTypes.DeleteSessionType)
		api.POST("/series", hb.Series.CreateSeries)
		api.GET("/series/:id", hb.Series.GetSeries)
	}
}

// RegisterAppointmentRoutes sets up appointment lookup and mutation
// endpoints for the practitioner.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.PractitionerAuthMiddleware())
		api.GET("/:id", hb.Appointments.GetAppointment)
		api.PATCH("/:id", hb.Appointments.PatchAppointment)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(utils.ErrorHandler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterPractitionerRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterHealthRoute(r)
}
