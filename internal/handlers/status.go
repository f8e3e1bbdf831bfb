package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StatusEvent is a message pushed to connected landing page clients.
type StatusEvent struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

// StatusHandler runs the connect/disconnect status channel.
type StatusHandler struct{}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// HandleWebSocket greets the client and waits for it to disconnect.
// Inbound messages are ignored.
// GET /ws
func (h *StatusHandler) HandleWebSocket(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer func() { _ = ws.Close() }()

	log.Printf("Landing page client connected: %s", c.ClientIP())

	err = ws.WriteJSON(StatusEvent{
		Event: "status",
		Data:  map[string]any{"message": "Connected to Access Shield landing page"},
	})
	if err != nil {
		log.Printf("WebSocket write error: %v", err)
		return
	}

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}
	}

	log.Printf("Landing page client disconnected: %s", c.ClientIP())
}
