package controllers

import (
	"Gamehub/utils"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// statusFor maps a service error to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, utils.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, utils.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, utils.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, utils.ErrConflict),
		errors.Is(err, utils.ErrAlreadyMember),
		errors.Is(err, utils.ErrGroupFull):
		return http.StatusConflict
	case errors.Is(err, utils.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// MethodNotAllowed answers requests for a known path with an unsupported method
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

// dayParam reads the "date" query parameter, today when absent
func dayParam(c *gin.Context, loc *time.Location, now time.Time) (time.Time, bool) {
	day, err := utils.ParseDay(c.Query("date"), loc, now)
	if err != nil {
		badRequest(c, "date must be formatted as YYYY-MM-DD")
		return time.Time{}, false
	}
	return day, true
}
