package handlers

import (
	"log"
	"net/http"

	"hotel-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// EventsHandler upgrades dashboard clients to websocket and subscribes them
// to the booking event feed.
type EventsHandler struct {
	hub *ws.Hub
}

func NewEventsHandler(hub *ws.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleEventsWS upgrades to websocket and keeps the subscription open until
// the client disconnects. The feed is outbound-only; inbound messages are
// discarded.
// GET /ws
func (h *EventsHandler) HandleEventsWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	clientID := h.hub.Register(conn)
	log.Printf("event subscriber connected: %s", clientID)

	defer func() {
		h.hub.Unregister(clientID)
		log.Printf("event subscriber disconnected: %s", clientID)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("subscriber %s closed connection", clientID)
			}
			return
		}
	}
}

// GetConnectedClients GET /api/v1/events/clients
func (h *EventsHandler) GetConnectedClients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.hub.Count()})
}
