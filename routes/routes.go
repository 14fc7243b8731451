package routes

import (
	"Gamehub/controllers"
	"Gamehub/middleware"
	"Gamehub/services/planner"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, svc *planner.Service, auth *middleware.Auth) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(controllers.MethodNotAllowed)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/ping", controllers.Ping)

	api := router.Group("/api")
	{
		api.GET("/data", controllers.GetData(svc))
		api.POST("/data", controllers.ReplaceData(svc))

		api.POST("/login", controllers.Login(svc, auth))
		api.POST("/logout", controllers.Logout)

		api.POST("/users", controllers.SaveUser(svc))
		api.GET("/users/:name", controllers.GetUser(svc))

		api.GET("/games", controllers.ListGames(svc))
		api.POST("/games", controllers.AddGame(svc))
		api.DELETE("/games/:id", controllers.DeleteGame(svc))

		api.GET("/signups", controllers.ListSignups(svc))
		api.POST("/signups", controllers.AddSignups(svc))

		api.GET("/plans", controllers.ListPlans(svc))
		api.POST("/plans", controllers.CreatePlan(svc))
		api.PUT("/plans/:id", controllers.UpdatePlan(svc))
		api.DELETE("/plans/:id", controllers.DeletePlan(svc))

		api.GET("/groups", controllers.ListGroups(svc))
		api.POST("/groups/:id/join", controllers.JoinGroup(svc))

		reports := api.Group("/reports")
		{
			reports.GET("/groups", controllers.GroupReport(svc))
			reports.GET("/daily", controllers.DailyReport(svc))
		}
	}
}
