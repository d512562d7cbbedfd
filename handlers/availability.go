package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"practiva/middleware"
	"practiva/models"
	"practiva/services/scheduling"
	"practiva/utils"
)

// AvailabilityHandler serves the practitioner's weekly schedule and
// personal time blocks.
type AvailabilityHandler struct {
	Svc    scheduling.SchedulingService
	Logger *zap.Logger
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc scheduling.SchedulingService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Logger: logger}
}

// GetAvailability returns the authenticated practitioner's weekly schedule.
// GET /api/practitioner/availability
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	wa, err := h.Svc.GetAvailability(c.Request.Context(), middleware.PractitionerID(c))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, wa)
}

// PutAvailability validates and stores the weekly schedule.
// PUT /api/practitioner/availability
func (h *AvailabilityHandler) PutAvailability(c *gin.Context) {
	var wa models.WeeklyAvailability
	if err := c.ShouldBindJSON(&wa); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	wa.PractitionerID = middleware.PractitionerID(c)

	if err := h.Svc.UpsertAvailability(c.Request.Context(), &wa); err != nil {
		// Schedule configuration errors are unprocessable, not malformed.
		var validationErr *scheduling.ValidationError
		if errors.As(err, &validationErr) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid schedule", validationErr.Message)
			return
		}
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, wa)
}

type timeBlockInput struct {
	StartsAt time.Time `json:"startsAt" binding:"required"`
	EndsAt   time.Time `json:"endsAt" binding:"required"`
	Reason   string    `json:"reason"`
}

// CreateTimeBlock declares a personal unavailable interval.
// POST /api/practitioner/time-blocks
func (h *AvailabilityHandler) CreateTimeBlock(c *gin.Context) {
	var input timeBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	block := &models.TimeBlock{
		PractitionerID: middleware.PractitionerID(c),
		StartsAt:       input.StartsAt,
		EndsAt:         input.EndsAt,
		Reason:         input.Reason,
	}
	if err := h.Svc.CreateTimeBlock(c.Request.Context(), block); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// DeleteTimeBlock removes a declared unavailable interval.
// DELETE /api/practitioner/time-blocks/:id
func (h *AvailabilityHandler) DeleteTimeBlock(c *gin.Context) {
	err := h.Svc.DeleteTimeBlock(c.Request.Context(), middleware.PractitionerID(c), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
