package controllers

import (
	"Gamehub/middleware"
	"Gamehub/models"
	"Gamehub/services/planner"
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Name string `json:"name" form:"name"`
}

// Login godoc
// @Summary Log in by username
// @Description Finds the user with the given name or registers a new one, starts a session and returns a token identifying the user.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body loginRequest true "Username"
// @Success 200 {object} map[string]interface{} "user, token, created"
// @Failure 400 {object} map[string]string "error: name is required"
// @Failure 503 {object} map[string]string "error: Store unavailable"
// @Router /api/login [post]
func Login(svc *planner.Service, auth *middleware.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, "Invalid request body")
			return
		}

		user, created, err := svc.Login(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := auth.IssueToken(user.ID, svc.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		if err := middleware.Remember(c, user.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user, "token": token, "created": created})
	}
}

// Logout godoc
// @Summary Log out
// @Description Deletes the session cookie
// @Tags Users
// @Produce json
// @Success 200 {object} map[string]string "message: Successfully logged out"
// @Failure 400 {object} map[string]string "error: Invalid session token"
// @Router /api/logout [post]
func Logout(c *gin.Context) {
	found, err := middleware.Forget(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	if !found {
		badRequest(c, "Invalid session token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// SaveUser godoc
// @Summary Create or update a user
// @Description Updates the user with the same id, or registers a new one. Names are unique.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 200 {object} map[string]interface{} "success, user"
// @Failure 400 {object} map[string]string "error: Invalid user"
// @Failure 409 {object} map[string]string "error: Username already exists"
// @Router /api/users [post]
func SaveUser(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			badRequest(c, "Invalid user")
			return
		}
		saved, err := svc.SaveUser(c.Request.Context(), user)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": saved})
	}
}

// GetUser godoc
// @Summary Get a user by name
// @Tags Users
// @Produce json
// @Param name path string true "Username"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /api/users/{name} [get]
func GetUser(svc *planner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.GetUser(c.Request.Context(), c.Param("name"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
