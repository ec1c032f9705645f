package handler

import (
	"errors"
	"net/http"

	"power-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// failStatus maps a service failure to its HTTP status. Anything outside the
// taxonomy is an internal error.
func failStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the uniform failure body. Callers never see raw stack traces,
// only {"success": false, "message": ...}.
func fail(c *gin.Context, err error) {
	c.JSON(failStatus(err), gin.H{"success": false, "message": err.Error()})
}

// badRequest reports a validation failure.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
}
