package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"practiva/models"
	"practiva/services/scheduling"
	"practiva/utils"
)

// AppointmentHandler serves appointment reads and updates.
type AppointmentHandler struct {
	Svc    scheduling.SchedulingService
	Logger *zap.Logger
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc scheduling.SchedulingService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

// GetAppointment returns one appointment by id.
// GET /api/appointments/:id
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// PatchAppointment applies either a status transition or a reschedule.
// The two are exclusive in one call.
// PATCH /api/appointments/:id
func (h *AppointmentHandler) PatchAppointment(c *gin.Context) {
	var input models.AppointmentPatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id := c.Param("id")
	hasStatus := input.Status != ""
	hasTimes := input.Date != "" || input.Time != ""

	switch {
	case hasStatus && hasTimes:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "send either a status change or new times, not both")

	case hasStatus:
		result, err := h.Svc.TransitionStatus(c.Request.Context(), id, models.AppointmentStatus(input.Status))
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		resp := gin.H{"appointment": result.Appointment}
		if result.SeriesErr != nil {
			// The transition committed; the series cascade did not. Report
			// it so the caller can retry the series update alone.
			resp["seriesUpdateFailed"] = true
			resp["seriesUpdateError"] = result.SeriesErr.Error()
		}
		c.JSON(http.StatusOK, resp)

	case hasTimes:
		if input.Date == "" || input.Time == "" {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "rescheduling requires both date and time")
			return
		}
		appt, err := h.Svc.Reschedule(c.Request.Context(), id, input.Date, input.Time)
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"appointment": appt})

	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "nothing to update")
	}
}
