package routes

import (
	"travel_desk/internal/controllers"
	"travel_desk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.GET("/dashboard", controllers.AdminDashboard)
		admin.GET("/hodtrfs", controllers.ListAllHodRequests)
		admin.POST("/decision/:id", controllers.DecideHodRequest)
	}

	api := r.Group("/api/HOD/TRF")
	api.Use(middleware.RequireAPIRole("admin"))
	{
		// JSON variant of the HOD request decision.
		api.POST("/:id/decision", controllers.DecideHodRequestAPI)
	}
}
