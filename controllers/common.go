package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"biketours-backend/models"
	"biketours-backend/services"
	"biketours-backend/utils"
)

// statusFor maps the service failure taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrTourNotFound),
		errors.Is(err, services.ErrSlotNotFound),
		errors.Is(err, services.ErrBikeNotFound),
		errors.Is(err, services.ErrGuideNotFound),
		errors.Is(err, services.ErrRentalNotFound),
		errors.Is(err, services.ErrLocationNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSlotUnavailable),
		errors.Is(err, services.ErrSlotExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidDuration),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrBikeUnavailable),
		errors.Is(err, models.ErrInvalidTourDuration),
		errors.Is(err, models.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(c *gin.Context, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	utils.JSONError(c, code, msg)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func currentRole(c *gin.Context) models.Role {
	return models.Role(utils.CurrentRole(c))
}
