package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/cx-tal-miterani/bluesky-booking/internal/app"
	"github.com/cx-tal-miterani/bluesky-booking/pkg/logger"
	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
	"github.com/gorilla/websocket"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeState        MessageType = "state"
	MessageTypeNotification MessageType = "notification"
	MessageTypeOrderUpdated MessageType = "order_updated"
)

// Message represents a WebSocket message
type Message struct {
	Type         MessageType          `json:"type"`
	SessionID    string               `json:"sessionId,omitempty"`
	State        *app.State           `json:"state,omitempty"`
	Notification *models.Notification `json:"notification,omitempty"`
	Order        *models.Order        `json:"order,omitempty"`
	Timestamp    int64                `json:"timestamp"`
}

// Client represents a WebSocket client connection
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

// Hub manages WebSocket connections per session. Order updates go to every
// connection since the order store is shared.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	quit       chan struct{}
	mu         sync.RWMutex
	log        logger.ILogger
}

// NewHub creates a new Hub
func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		quit:       make(chan struct{}),
		log:        log,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case <-h.quit:
			h.mu.Lock()
			for _, clients := range h.clients {
				for client := range clients {
					close(client.send)
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.sessionID] == nil {
				h.clients[client.sessionID] = make(map[*Client]bool)
			}
			h.clients[client.sessionID][client] = true
			h.log.Debug("client registered",
				logger.String("sessionId", client.sessionID), logger.Int("total", len(h.clients[client.sessionID])))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				h.log.Error("failed to marshal message", logger.Error(err))
				continue
			}

			h.mu.Lock()
			for _, client := range h.targets(message) {
				select {
				case client.send <- data:
				default:
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.clients[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.send)
	h.log.Debug("client unregistered",
		logger.String("sessionId", client.sessionID), logger.Int("remaining", len(clients)))
	if len(clients) == 0 {
		delete(h.clients, client.sessionID)
	}
}

// targets must be called with mu held.
func (h *Hub) targets(message *Message) []*Client {
	var out []*Client
	if message.SessionID == "" {
		for _, clients := range h.clients {
			for c := range clients {
				out = append(out, c)
			}
		}
		return out
	}
	for c := range h.clients[message.SessionID] {
		out = append(out, c)
	}
	return out
}

// Stop closes every connection's send queue and ends Run.
func (h *Hub) Stop() {
	close(h.quit)
}

func (h *Hub) enqueue(msg *Message) {
	msg.Timestamp = time.Now().UnixMilli()
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warning("broadcast queue full, dropping message",
			logger.String("type", string(msg.Type)), logger.String("sessionId", msg.SessionID))
	}
}

// PublishState implements app.Publisher.
func (h *Hub) PublishState(sessionID string, st app.State) {
	h.enqueue(&Message{Type: MessageTypeState, SessionID: sessionID, State: &st})
}

// PublishNotification implements app.Publisher.
func (h *Hub) PublishNotification(sessionID string, n models.Notification) {
	h.enqueue(&Message{Type: MessageTypeNotification, SessionID: sessionID, Notification: &n})
}

// BroadcastOrderUpdated tells every session that an order changed.
func (h *Hub) BroadcastOrderUpdated(order models.Order) {
	h.enqueue(&Message{Type: MessageTypeOrderUpdated, Order: &order})
}

// GetClientCount returns the number of connections of a session
func (h *Hub) GetClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}
