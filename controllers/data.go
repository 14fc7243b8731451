package controllers

import (
	"Gamehub/models"
	"Gamehub/services/planner"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetData godoc
// @Summary Get the whole application state
// @Description Returns users, games, signups, plans and groups as one document. Falls back to the default catalog when the store cannot be read.
// @Tags Data
// @Produce json
// @Success 200 {object} models.Snapshot
// @Router /api/data [get]
func GetData(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Snapshot(c.Request.Context()))
	}
}

// ReplaceData godoc
// @Summary Replace the whole application state
// @Description Overwrites the stored document. When "version" is present it must match the stored version.
// @Tags Data
// @Accept json
// @Produce json
// @Param data body models.Snapshot true "Application state"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 400 {object} map[string]string "error: Invalid document"
// @Failure 409 {object} map[string]string "error: Version conflict"
// @Failure 503 {object} map[string]string "error: Store unavailable"
// @Router /api/data [post]
func ReplaceData(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var snap models.Snapshot
		if err := c.ShouldBindJSON(&snap); err != nil {
			badRequest(c, "Invalid document")
			return
		}
		if err := svc.ReplaceSnapshot(c.Request.Context(), &snap); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "version": snap.Version})
	}
}
