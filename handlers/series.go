package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	clientRepo "practiva/database/repository/client"
	seriesRepo "practiva/database/repository/series"
	"practiva/middleware"
	"practiva/models"
	"practiva/utils"
)

// SeriesHandler manages treatment series. Session progress itself is
// driven by appointment completions, not by this handler.
type SeriesHandler struct {
	Series  seriesRepo.SeriesRepository
	Clients clientRepo.ClientRepository
	Logger  *zap.Logger
}

// NewSeriesHandler constructs a SeriesHandler.
func NewSeriesHandler(series seriesRepo.SeriesRepository, clients clientRepo.ClientRepository, logger *zap.Logger) *SeriesHandler {
	return &SeriesHandler{Series: series, Clients: clients, Logger: logger}
}

type seriesInput struct {
	ClientID      string `json:"clientId" binding:"required"`
	Title         string `json:"title" binding:"required"`
	TotalSessions int    `json:"totalSessions" binding:"required,min=1"`
}

// CreateSeries opens a new treatment series for an existing client.
// POST /api/practitioner/series
func (h *SeriesHandler) CreateSeries(c *gin.Context) {
	var in seriesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if _, err := h.Clients.GetByID(c.Request.Context(), in.ClientID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "not found", "client not found")
			return
		}
		h.Logger.Error("failed to look up client", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "failed to create series")
		return
	}

	series := models.TreatmentSeries{
		ID:             uuid.NewString(),
		PractitionerID: middleware.PractitionerID(c),
		ClientID:       in.ClientID,
		Title:          in.Title,
		TotalSessions:  in.TotalSessions,
		CurrentSession: 0,
		Status:         models.SeriesActive,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.Series.Create(c.Request.Context(), &series); err != nil {
		h.Logger.Error("failed to create series", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "failed to create series")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"series": series})
}

// GetSeries returns a single treatment series.
// GET /api/practitioner/series/:id
func (h *SeriesHandler) GetSeries(c *gin.Context) {
	series, err := h.Series.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.JSONError(c, http.StatusNotFound, "not found", "series not found")
		return
	}
	if err != nil {
		h.Logger.Error("failed to load series", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "failed to load series")
		return
	}
	if series.PractitionerID != middleware.PractitionerID(c) {
		utils.JSONError(c, http.StatusNotFound, "not found", "series not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}
