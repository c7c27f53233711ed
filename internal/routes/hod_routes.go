package routes

import (
	"travel_desk/internal/controllers"
	"travel_desk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func HodRoutes(r *gin.Engine) {
	hod := r.Group("/hod")
	hod.Use(middleware.RequireRole("hod"))
	{
		hod.GET("/dashboard", controllers.HodDashboard)
		hod.GET("/driverForm", controllers.ShowBookingForm)
		hod.GET("/TRF_ADMIN", controllers.ShowHodRequestForm)
		hod.POST("/decision/:id", controllers.DecideEmployeeRequest)
	}

	api := r.Group("/api")
	api.Use(middleware.RequireAPIRole("hod"))
	{
		// Driver assignment submitted from the HOD booking form.
		api.POST("/users/hod/bookings", controllers.CreateBooking)
		// Travel request escalation, HOD to admin.
		api.POST("/HOD/ADMIN/TRF", controllers.CreateHodRequest)
		// JSON variant of the employee request decision.
		api.POST("/EMP/HOD/TRF/:id/decision", controllers.DecideEmployeeRequestAPI)
	}
}
