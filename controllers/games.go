package controllers

import (
	"Gamehub/middleware"
	"Gamehub/services/planner"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListGames godoc
// @Summary List the game catalog
// @Tags Games
// @Produce json
// @Param q query string false "Case-insensitive filter on name or category"
// @Success 200 {array} models.Game
// @Router /api/games [get]
func ListGames(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ListGames(c.Request.Context(), c.Query("q")))
	}
}

// AddGame godoc
// @Summary Add a game to the catalog
// @Tags Games
// @Accept json
// @Produce json
// @Param game body planner.GameInput true "Game"
// @Success 201 {object} models.Game
// @Failure 400 {object} map[string]string "error: Invalid game"
// @Router /api/games [post]
func AddGame(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in planner.GameInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid game")
			return
		}
		game, err := svc.AddGame(c.Request.Context(), middleware.CurrentUser(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, game)
	}
}

// DeleteGame godoc
// @Summary Delete a game from the catalog
// @Description System games cannot be deleted; other games only by their creator.
// @Tags Games
// @Produce json
// @Param id path string true "Game id"
// @Success 200 {object} map[string]interface{} "success: true"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Game not found"
// @Router /api/games/{id} [delete]
// @Security ApiKeyAuth
func DeleteGame(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteGame(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
