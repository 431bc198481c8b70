package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 5 * time.Second
	// DefaultPongWait is how long a subscriber may stay silent before its
	// read deadline expires. Pings go out at 9/10 of it.
	DefaultPongWait = 60 * time.Second
	sendBuffer      = 16
)

// Hub tracks subscriber connections by id. After Add, every write to a conn
// happens on its writer goroutine, so each conn has a single writer.
type Hub struct {
	PongWait time.Duration

	mu      sync.Mutex
	clients map[string]*client
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

func NewHub() *Hub {
	return &Hub{PongWait: DefaultPongWait, clients: map[string]*client{}}
}

func (h *Hub) pingPeriod() time.Duration {
	return h.PongWait * 9 / 10
}

// Add registers c and starts its writer. The caller keeps reading from c and
// calls Remove when the read loop ends.
func (h *Hub) Add(id string, c *websocket.Conn) {
	cl := &client{conn: c, send: make(chan []byte, sendBuffer), done: make(chan struct{})}
	h.mu.Lock()
	if old, ok := h.clients[id]; ok {
		close(old.done)
	}
	h.clients[id] = cl
	h.mu.Unlock()
	go h.writeLoop(id, cl)
}

func (h *Hub) Remove(id string) {
	h.mu.Lock()
	h.remove(id)
	h.mu.Unlock()
}

// remove expects h.mu to be held.
func (h *Hub) remove(id string) {
	if cl, ok := h.clients[id]; ok {
		close(cl.done)
		delete(h.clients, id)
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues v as JSON for every subscriber. It never blocks on a
// slow conn: a subscriber whose buffer is full is dropped.
func (h *Hub) Broadcast(v any) error {
	msg, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, cl := range h.clients {
		select {
		case cl.send <- msg:
		default:
			h.remove(id)
		}
	}
	return nil
}

func (h *Hub) writeLoop(id string, cl *client) {
	ticker := time.NewTicker(h.pingPeriod())
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()
	for {
		select {
		case <-cl.done:
			return
		case msg := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.drop(id, cl)
				return
			}
		case <-ticker.C:
			if err := cl.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.drop(id, cl)
				return
			}
		}
	}
}

// drop removes cl unless id has been re-registered with another conn.
func (h *Hub) drop(id string, cl *client) {
	h.mu.Lock()
	if h.clients[id] == cl {
		h.remove(id)
	}
	h.mu.Unlock()
}
