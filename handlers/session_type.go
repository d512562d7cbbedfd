package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sessionTypeRepo "practiva/database/repository/sessiontype"
	"practiva/middleware"
	"practiva/models"
	"practiva/utils"
)

// SessionTypeHandler manages the practitioner's bookable service catalogue.
type SessionTypeHandler struct {
	Repo   sessionTypeRepo.SessionTypeRepository
	Logger *zap.Logger
}

// NewSessionTypeHandler constructs a SessionTypeHandler.
func NewSessionTypeHandler(repo sessionTypeRepo.SessionTypeRepository, logger *zap.Logger) *SessionTypeHandler {
	return &SessionTypeHandler{Repo: repo, Logger: logger}
}

// ListSessionTypes returns the practitioner's session types sorted by name.
// GET /api/practitioner/session-types
func (h *SessionTypeHandler) ListSessionTypes(c *gin.Context) {
	types, err := h.Repo.ListByPractitioner(c.Request.Context(), middleware.PractitionerID(c))
	if err != nil {
		h.Logger.Error("failed to list session types", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "failed to list session types")
		return
	}
	if types == nil {
		types = []models.SessionType{}
	}
	c.JSON(http.StatusOK, gin.H{"sessionTypes": types})
}

type sessionTypeInput struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,min=1"`
	Price           float64 `json:"price" binding:"min=0"`
}

// CreateSessionType adds a bookable service.
// POST /api/practitioner/session-types
func (h *SessionTypeHandler) CreateSessionType(c *gin.Context) {
	var in sessionTypeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	st := models.SessionType{
		ID:              uuid.NewString(),
		PractitionerID:  middleware.PractitionerID(c),
		Name:            in.Name,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), &st); err != nil {
		h.Logger.Error("failed to create session type", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "failed to create session type")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sessionType": st})
}

// DeleteSessionType removes a service from the catalogue. Existing
// appointments keep their recorded duration.
// DELETE /api/practitioner/session-types/:id
func (h *SessionTypeHandler) DeleteSessionType(c *gin.Context) {
	err := h.Repo.Delete(c.Request.Context(), middleware.PractitionerID(c), c.Param("id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.JSONError(c, http.StatusNotFound, "not found", "session type not found")
		return
	}
	if err != nil {
		h.Logger.Error("failed to delete session type", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "failed to delete session type")
		return
	}
	c.Status(http.StatusNoContent)
}
