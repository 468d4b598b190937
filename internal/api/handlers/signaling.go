package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"cureon/internal/signaling"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the web client's origin once it is deployed behind a fixed domain
	},
}

// SignalingHandler upgrades websocket connections into the relay's call and
// chat namespaces.
type SignalingHandler struct {
	relay *signaling.Relay
}

func NewSignalingHandler(relay *signaling.Relay) *SignalingHandler {
	return &SignalingHandler{relay: relay}
}

// Call serves the default namespace: WebRTC signaling plus the doctor
// emergency broadcast.
func (h *SignalingHandler) Call(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.relay.ServeCall(conn)
}

// Chat serves the text-chat namespace.
func (h *SignalingHandler) Chat(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.relay.ServeChat(conn)
}
