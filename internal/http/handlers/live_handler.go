// README: WebSocket upgrade for the live location channel.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/GroupB-499/RidePSUBackend/internal/relay"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Clients connect from the mobile apps; origin checks mirror the open
	// CORS policy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type LiveHandler struct {
	hub  *relay.Hub
	sink relay.EventSink
}

func NewLiveHandler(hub *relay.Hub, sink relay.EventSink) *LiveHandler {
	return &LiveHandler{hub: hub, sink: sink}
}

func (h *LiveHandler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	relay.Serve(c.Request.Context(), h.hub, h.sink, conn)
}
