package routes

import (
	"travel_desk/internal/controllers"
	"travel_desk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.GET("/", controllers.ShowLanding)
	r.POST("/api/login", controllers.Login)
	r.GET("/logout", controllers.Logout)

	users := r.Group("/api/users")
	users.Use(middleware.RequireAPIRole("admin"))
	{
		users.POST("", controllers.ProvisionUser)
	}
}
