package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"practiva/models"
	"practiva/services/scheduling"
	"practiva/utils"
)

// BookingHandler serves the public booking surface: slot queries and
// appointment creation.
type BookingHandler struct {
	Svc    scheduling.SchedulingService
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc scheduling.SchedulingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// GetSlots returns the bookable start times for one date.
// GET /api/booking/slots?practitionerId=&date=&sessionTypeId=
func (h *BookingHandler) GetSlots(c *gin.Context) {
	q := scheduling.SlotQuery{
		PractitionerID: c.Query("practitionerId"),
		SessionTypeID:  c.Query("sessionTypeId"),
		Date:           c.Query("date"),
	}
	if q.PractitionerID == "" || q.SessionTypeID == "" || q.Date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "practitionerId, sessionTypeId and date are required")
		return
	}

	slots, err := h.Svc.GetDaySlots(c.Request.Context(), q)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"date": q.Date, "slots": slots})
}

// CreateBooking books an appointment from the public surface.
// POST /api/booking
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.BookAppointment(c.Request.Context(), input)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointmentId": appt.ID, "appointment": appt})
}
