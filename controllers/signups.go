package controllers

import (
	"Gamehub/middleware"
	"Gamehub/services/planner"
	"Gamehub/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	UserID string                `json:"userId"`
	Date   string                `json:"date"`
	Games  []planner.SignupInput `json:"games"`
}

// actingUser prefers an explicit id from the request over the identified caller
func actingUser(c *gin.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return middleware.CurrentUser(c)
}

// ListSignups godoc
// @Summary List the signups of a day
// @Tags Signups
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD, today when omitted"
// @Success 200 {array} models.GameSignup
// @Failure 400 {object} map[string]string "error: Invalid date"
// @Router /api/signups [get]
func ListSignups(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		day, ok := dayParam(c, svc.Location(), svc.Now())
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.ListSignups(c.Request.Context(), day))
	}
}

// AddSignups godoc
// @Summary Sign up for games on a day
// @Description Records one signup per selected game. A user signs up for a game at most once per day.
// @Tags Signups
// @Accept json
// @Produce json
// @Param body body signupRequest true "Selected games"
// @Success 201 {array} models.GameSignup
// @Failure 400 {object} map[string]string "error: Invalid signup"
// @Failure 404 {object} map[string]string "error: User not found"
// @Failure 409 {object} map[string]string "error: Already signed up"
// @Router /api/signups [post]
func AddSignups(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid signup")
			return
		}
		day, err := utils.ParseDay(req.Date, svc.Location(), svc.Now())
		if err != nil {
			badRequest(c, "date must be formatted as YYYY-MM-DD")
			return
		}
		created, err := svc.AddSignups(c.Request.Context(), actingUser(c, req.UserID), day, req.Games)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
