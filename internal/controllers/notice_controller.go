package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// upgrader configures the WebSocket connection for the notice channel.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all for development (restrict in production!)
	},
}

// HandleNoticeWebSocket accepts a notice-channel connection. No message
// protocol is defined yet; the handler logs connect/disconnect and drains
// inbound frames until the peer goes away.
func HandleNoticeWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade notice WebSocket connection.")
		return
	}
	defer conn.Close()

	logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("Notice client connected.")

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).Warn("Error reading from notice WebSocket.")
			}
			break
		}
	}

	logrus.WithField("conn_ptr", fmt.Sprintf("%p", conn)).Info("Notice client disconnected.")
}
