package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"practiva/middleware"
	"practiva/models"
	"practiva/services/scheduling"
	"practiva/utils"
)

// CalendarHandler serves the practitioner's calendar views.
type CalendarHandler struct {
	Svc    scheduling.SchedulingService
	Logger *zap.Logger
}

// NewCalendarHandler constructs a CalendarHandler.
func NewCalendarHandler(svc scheduling.SchedulingService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Svc: svc, Logger: logger}
}

// GetCalendar resolves a view and anchor into a range plus the
// appointments inside it.
// GET /api/practitioner/calendar?view=&anchor=
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	view := models.CalendarView(c.DefaultQuery("view", string(models.ViewWeek)))
	if !view.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "view must be one of day, week, month, list")
		return
	}

	anchor := time.Now()
	if raw := c.Query("anchor"); raw != "" {
		parsed, err := scheduling.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		anchor = parsed
	}

	cr, appts, err := h.Svc.ListCalendar(c.Request.Context(), middleware.PractitionerID(c), view, anchor)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{
		"range":        cr,
		"appointments": appts,
	})
}
