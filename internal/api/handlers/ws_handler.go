package handlers

import (
	"log"
	"net/http"
	"time"

	svc "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/application"
	app "github.com/The-Tech-Tentacles/CampusHub-sub000/internal/domain/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/response"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// How often a fresh application snapshot is pushed.
	snapshotPeriod = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	svc *svc.ApplicationService
}

func NewWSHandler(s *svc.ApplicationService) *WSHandler {
	return &WSHandler{svc: s}
}

// StreamApplications pushes the caller's visible application list over a
// websocket on a fixed interval. The snapshot is filtered with the same
// visibility rules as the list endpoint.
func (h *WSHandler) StreamApplications(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail("unauthorized"))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("websocket upgrade failed"))
		return
	}
	defer conn.Close()

	done := make(chan struct{})

	// Read pump: consume control frames and detect the peer going away.
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func() bool {
		apps, err := h.svc.List(userID)
		if err != nil {
			log.Printf("application stream: list failed for user %d: %v", userID, err)
			return false
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(app.ToViews(apps)) == nil
	}

	if !send() {
		return
	}

	snapshot := time.NewTicker(snapshotPeriod)
	defer snapshot.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case <-snapshot.C:
			if !send() {
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
