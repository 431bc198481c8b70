package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/cyberowl/owl-tts/internal/core/utterance"
	"github.com/cyberowl/owl-tts/internal/repo/memory"
	"github.com/cyberowl/owl-tts/pkg/types"
	"github.com/cyberowl/owl-tts/pkg/ws"
)

type EventsHandler struct {
	Hub      *ws.Hub
	Repo     *memory.UtteranceRepo
	Upgrader websocket.Upgrader
}

func NewEventsHandler(h *ws.Hub, r *memory.UtteranceRepo) *EventsHandler {
	return &EventsHandler{
		Hub:  h,
		Repo: r,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// WS subscribes the client to utterance events. The most recent utterances
// are replayed first.
func (h *EventsHandler) WS(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	id := "sub_" + uuid.NewString()
	defer func() {
		h.Hub.Remove(id)
		conn.Close()
	}()

	pongWait := h.Hub.PongWait
	conn.SetReadLimit(4 << 10)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(types.Event{Type: "hello", TS: time.Now().UnixMilli()}); err != nil {
		return
	}
	recent := h.Repo.Recent(5)
	for i := len(recent) - 1; i >= 0; i-- {
		if err := conn.WriteJSON(utterance.Event(recent[i])); err != nil {
			return
		}
	}
	// From here on the hub owns writes to conn, including pings.
	h.Hub.Add(id, conn)

	// Clients only send control frames; reading keeps pong handling alive.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}
