package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"practiva/models"
	"practiva/services/scheduling"
)

// asPractitioner stands in for the auth middleware in tests.
func asPractitioner(pid string) gin.HandlerFunc {
	return func(c *gin.Context) { c.Set("practitionerID", pid) }
}

func availabilityRouter(svc scheduling.SchedulingService) *gin.Engine {
	r := gin.New()
	h := NewAvailabilityHandler(svc, zap.NewNop())
	api := r.Group("/api/practitioner", asPractitioner("p1"))
	api.GET("/availability", h.GetAvailability)
	api.PUT("/availability", h.PutAvailability)
	api.POST("/time-blocks", h.CreateTimeBlock)
	api.DELETE("/time-blocks/:id", h.DeleteTimeBlock)
	return r
}

func TestPutAvailabilityForcesAuthenticatedOwner(t *testing.T) {
	var stored *models.WeeklyAvailability
	svc := &stubService{
		upsertAvail: func(_ context.Context, wa *models.WeeklyAvailability) error {
			stored = wa
			return nil
		},
	}
	r := availabilityRouter(svc)

	body := []byte(`{"practitionerId":"intruder","days":[],"bufferMinutes":15,"bookingWindowDays":60}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/practitioner/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stored)
	assert.Equal(t, "p1", stored.PractitionerID)
}

func TestPutAvailabilityInvalidScheduleIsUnprocessable(t *testing.T) {
	svc := &stubService{
		upsertAvail: func(_ context.Context, _ *models.WeeklyAvailability) error {
			return scheduling.NewValidationError("availability must configure exactly 7 days, got 0")
		},
	}
	r := availabilityRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/practitioner/availability", bytes.NewReader([]byte(`{"days":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetAvailability(t *testing.T) {
	svc := &stubService{
		getAvailability: func(_ context.Context, pid string) (*models.WeeklyAvailability, error) {
			assert.Equal(t, "p1", pid)
			return &models.WeeklyAvailability{PractitionerID: pid, BufferMinutes: 15}, nil
		},
	}
	r := availabilityRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/practitioner/availability", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bufferMinutes":15`)
}

func TestCreateTimeBlockHandler(t *testing.T) {
	var created *models.TimeBlock
	svc := &stubService{
		createTimeBlock: func(_ context.Context, block *models.TimeBlock) error {
			created = block
			return nil
		},
	}
	r := availabilityRouter(svc)

	body := []byte(`{"startsAt":"2026-03-18T09:00:00Z","endsAt":"2026-03-18T12:00:00Z","reason":"training"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/practitioner/time-blocks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, "p1", created.PractitionerID)
	assert.Equal(t, time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC), created.StartsAt)
	assert.Equal(t, "training", created.Reason)
}

func TestDeleteTimeBlockHandler(t *testing.T) {
	svc := &stubService{
		deleteTimeBlock: func(_ context.Context, pid, blockID string) error {
			assert.Equal(t, "p1", pid)
			assert.Equal(t, "block-1", blockID)
			return nil
		},
	}
	r := availabilityRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/practitioner/time-blocks/block-1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteTimeBlockMissingHandler(t *testing.T) {
	svc := &stubService{
		deleteTimeBlock: func(_ context.Context, _, blockID string) error {
			return scheduling.NewNotFoundError("time block", blockID)
		},
	}
	r := availabilityRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/practitioner/time-blocks/ghost", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
