package routes

import (
	"travel_desk/internal/controllers"

	"github.com/gin-gonic/gin"
)

func WebSocketRoutes(r *gin.Engine) {
	ws := r.Group("/ws")
	{
		ws.GET("/notices", controllers.HandleNoticeWebSocket)
	}
}
