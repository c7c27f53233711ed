package routes

import (
	"travel_desk/internal/controllers"
	"travel_desk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func EmployeeRoutes(r *gin.Engine) {
	employee := r.Group("/employee")
	employee.Use(middleware.RequireRole("employee"))
	{
		employee.GET("/dashboard", controllers.EmployeeDashboard)
		employee.GET("/travel-request-form", controllers.ShowEmployeeRequestForm)
	}

	// Travel request submission, employee to HOD.
	api := r.Group("/api/EMP/HOD/TRF")
	api.Use(middleware.RequireAPIRole("employee"))
	{
		api.POST("", controllers.CreateEmployeeRequest)
	}
}
