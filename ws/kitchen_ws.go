package ws

import (
	"net/http"
	"sync"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// KitchenHub pushes order events to connected kitchen terminals so the
// queue updates without polling.
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	log        *zap.Logger
}

type OrderEvent struct {
	Type     string           `json:"type"` // order_created | order_status_changed
	Commande *entity.Commande `json:"commande"`
}

func NewKitchenHub(log *zap.Logger) *KitchenHub {
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		log:        log,
	}
}

// Run loops over register/unregister/broadcast until the process ends.
func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(evt); err != nil {
					h.log.Warn("ws write", zap.Error(err))
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderCreated implements services.OrderNotifier.
func (h *KitchenHub) OrderCreated(o *entity.Commande) {
	h.publish(OrderEvent{Type: "order_created", Commande: o})
}

// OrderStatusChanged implements services.OrderNotifier.
func (h *KitchenHub) OrderStatusChanged(o *entity.Commande) {
	h.publish(OrderEvent{Type: "order_status_changed", Commande: o})
}

func (h *KitchenHub) publish(evt OrderEvent) {
	// never let a slow feed block an order mutation
	select {
	case h.broadcast <- evt:
	default:
		h.log.Warn("kitchen feed full, dropping event", zap.String("type", evt.Type))
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/kitchen (auth middleware runs before the upgrade)
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
		return
	}
	h.register <- conn

	// the feed is one-way; reads only detect the client going away
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
