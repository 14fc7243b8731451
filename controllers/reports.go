package controllers

import (
	"Gamehub/services/planner"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GroupReport godoc
// @Summary Group report of a day
// @Description Per time slot: the day's groups, those still recruiting, and willing users whose plan fits the slot.
// @Tags Reports
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD, today when omitted"
// @Success 200 {array} planner.SlotReport
// @Failure 400 {object} map[string]string "error: Invalid date"
// @Router /api/reports/groups [get]
func GroupReport(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		day, ok := dayParam(c, svc.Location(), svc.Now())
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.GroupReport(c.Request.Context(), day))
	}
}

// DailyReport godoc
// @Summary Signup statistics of a day
// @Tags Reports
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD, today when omitted"
// @Success 200 {object} reports.Daily
// @Failure 400 {object} map[string]string "error: Invalid date"
// @Router /api/reports/daily [get]
func DailyReport(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		day, ok := dayParam(c, svc.Location(), svc.Now())
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.DailyReport(c.Request.Context(), day))
	}
}
