package controllers

import (
	"Gamehub/services/planner"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type planRequest struct {
	UserID              string    `json:"userId"`
	TargetGameID        string    `json:"targetGameId"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	WillingToJoinOthers bool      `json:"willingToJoinOthers"`
}

func (r planRequest) input() planner.PlanInput {
	return planner.PlanInput{
		GameID:              r.TargetGameID,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		WillingToJoinOthers: r.WillingToJoinOthers,
	}
}

// ListPlans godoc
// @Summary List weekend plans
// @Tags Plans
// @Produce json
// @Param userId query string false "Only this user's plans"
// @Param active query bool false "Drop plans that already ended"
// @Success 200 {array} models.GamePlan
// @Router /api/plans [get]
func ListPlans(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ListPlans(c.Request.Context(), c.Query("userId"), c.Query("active") == "true"))
	}
}

// CreatePlan godoc
// @Summary Create a weekend plan
// @Description Stores the plan and regroups: plans for the same game and window share one group.
// @Tags Plans
// @Accept json
// @Produce json
// @Param plan body planRequest true "Plan"
// @Success 201 {object} models.GamePlan
// @Failure 400 {object} map[string]string "error: Invalid plan"
// @Failure 404 {object} map[string]string "error: Game not found"
// @Router /api/plans [post]
func CreatePlan(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req planRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid plan")
			return
		}
		plan, err := svc.CreatePlan(c.Request.Context(), actingUser(c, req.UserID), req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, plan)
	}
}

// UpdatePlan godoc
// @Summary Update a weekend plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Plan id"
// @Param plan body planRequest true "Plan"
// @Success 200 {object} models.GamePlan
// @Failure 400 {object} map[string]string "error: Invalid plan"
// @Failure 403 {object} map[string]string "error: Not the owner"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Router /api/plans/{id} [put]
func UpdatePlan(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req planRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid plan")
			return
		}
		plan, err := svc.UpdatePlan(c.Request.Context(), actingUser(c, req.UserID), c.Param("id"), req.input())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

// DeletePlan godoc
// @Summary Delete a weekend plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan id"
// @Param userId query string false "Owner, defaults to the identified caller"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 403 {object} map[string]string "error: Not the owner"
// @Failure 404 {object} map[string]string "error: Plan not found"
// @Router /api/plans/{id} [delete]
func DeletePlan(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeletePlan(c.Request.Context(), actingUser(c, c.Query("userId")), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
