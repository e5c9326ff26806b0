package reports

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/xyz-asif/hazardwatch/internal/pkg/logger"
)

type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Event is pushed to every connected map client after a store mutation.
type Event struct {
	Type   EventType `json:"type"`
	Report Report    `json:"report"`
}

// Hub fans store mutations out to websocket subscribers. Run owns the
// client set; everything else talks to it over channels.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	stopOnce   sync.Once
	upgrader   websocket.Upgrader
	log        *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Run serves register/unregister/broadcast until ctx is cancelled, then
// closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			return

		case conn := <-h.register:
			h.clients[conn] = true

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}

		case ev := <-h.broadcast:
			for conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteJSON(ev); err != nil {
					h.log.Warn("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

// Publish queues ev for delivery. It never blocks the caller: if the hub is
// stopped or the queue is full the event is dropped.
func (h *Hub) Publish(ev Event) {
	select {
	case <-h.done:
	case h.broadcast <- ev:
	default:
		h.log.Warn("dropping %s event for %s: broadcast queue full", ev.Type, ev.Report.ID)
	}
}

// HandleWebSocket upgrades GET /ws/reports and keeps the connection
// registered until the client goes away.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade error: %v", err)
		return
	}

	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return
	}

	// Clients only listen; reading detects the close frame.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}
