package routes

import (
	"travel_desk/internal/controllers"
	"travel_desk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	driver := r.Group("/driver")
	driver.Use(middleware.RequireRole("driver"))
	{
		driver.GET("/dashboard", controllers.DriverDashboard)
		driver.GET("/history", controllers.DriverHistory)
		driver.GET("/form/:bookingId", controllers.ShowUsageForm)
	}

	api := r.Group("/api/driver")
	api.Use(middleware.RequireAPIRole("driver"))
	{
		api.POST("/updateBooking", controllers.UpdateBooking)
	}
}
