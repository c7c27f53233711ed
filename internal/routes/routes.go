package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery and request logging middleware
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	r.LoadHTMLGlob("web/templates/*.html")

	AuthRoutes(r)
	DriverRoutes(r)
	EmployeeRoutes(r)
	HodRoutes(r)
	AdminRoutes(r)
	WebSocketRoutes(r)

	return r
}
