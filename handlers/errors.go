package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"practiva/services/scheduling"
	"practiva/utils"
)

// respondSchedulingError maps the engine's error taxonomy onto HTTP
// status codes: 400 malformed input, 404 unknown entity, 409 contention,
// 422 booking-rule violation, 500 collaborator failure.
func respondSchedulingError(c *gin.Context, err error) {
	var (
		validationErr *scheduling.ValidationError
		notFoundErr   *scheduling.NotFoundError
		conflictErr   *scheduling.ConflictError
		dependencyErr *scheduling.DependencyError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "not found", notFoundErr.Error())
	case errors.As(err, &conflictErr):
		status := http.StatusConflict
		if conflictErr.Rule {
			status = http.StatusUnprocessableEntity
		}
		utils.JSONError(c, status, "booking conflict", conflictErr.Message)
	case errors.As(err, &dependencyErr):
		utils.JSONError(c, http.StatusInternalServerError, "service unavailable", "a backing service failed; please retry")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
