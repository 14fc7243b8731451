package controllers

import (
	"Gamehub/models"
	"Gamehub/services/planner"
	"net/http"

	"github.com/gin-gonic/gin"
)

type joinRequest struct {
	UserID string `json:"userId"`
}

// ListGroups godoc
// @Summary List the groups of a day
// @Description Groups whose start falls on the day, optionally restricted to one time slot. Ended groups are left out.
// @Tags Groups
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD, today when omitted"
// @Param slot query string false "morning, afternoon or evening"
// @Success 200 {array} models.GameGroup
// @Failure 400 {object} map[string]string "error: Invalid date or slot"
// @Router /api/groups [get]
func ListGroups(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		day, ok := dayParam(c, svc.Location(), svc.Now())
		if !ok {
			return
		}
		var slot models.TimeSlot
		if raw := c.Query("slot"); raw != "" {
			if slot, ok = models.ParseTimeSlot(raw); !ok {
				badRequest(c, "slot must be morning, afternoon or evening")
				return
			}
		}
		c.JSON(http.StatusOK, svc.ListGroups(c.Request.Context(), day, slot))
	}
}

// JoinGroup godoc
// @Summary Join a group
// @Tags Groups
// @Accept json
// @Produce json
// @Param id path string true "Group id"
// @Param body body joinRequest false "Joining user, defaults to the identified caller"
// @Success 200 {object} models.GameGroup
// @Failure 404 {object} map[string]string "error: Group not found"
// @Failure 409 {object} map[string]string "error: Already a member or group full"
// @Router /api/groups/{id}/join [post]
func JoinGroup(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req joinRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				badRequest(c, "Invalid request body")
				return
			}
		}
		group, err := svc.JoinGroup(c.Request.Context(), c.Param("id"), actingUser(c, req.UserID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, group)
	}
}
