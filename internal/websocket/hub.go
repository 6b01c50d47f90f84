package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"adminconsole/internal/listing"
	"adminconsole/internal/middleware"
)

const (
	sendBuffer    = 256
	publishBuffer = 1024

	// MessageListChanged is the type of every pushed list event
	MessageListChanged = "list.changed"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS layer and the token check
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the JSON frame written to the browser
type Message struct {
	Type string        `json:"type"`
	Data listing.Event `json:"data"`
}

// Client represents a single connected WebSocket client of one operator
type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Operator string
	Send     chan []byte
}

type delivery struct {
	operator string
	payload  []byte
}

// Hub keeps the connected clients per operator and delivers each operator's list events
// to that operator's connections only
type Hub struct {
	log        logrus.FieldLogger
	clients    map[string]map[*Client]bool
	publish    chan delivery
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu    sync.RWMutex
	count int
}

// NewHub initializes a new WS Hub instance
func NewHub(log logrus.FieldLogger) *Hub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hub{
		log:        log.WithField("component", "websocket"),
		clients:    make(map[string]map[*Client]bool),
		publish:    make(chan delivery, publishBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run starts the core dispatch loop for WebSocket events until Stop is called
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			for _, set := range h.clients {
				for client := range set {
					close(client.Send)
				}
			}
			h.clients = make(map[string]map[*Client]bool)
			h.setCount(0)
			return
		case client := <-h.register:
			set, ok := h.clients[client.Operator]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.Operator] = set
			}
			set[client] = true
			h.setCount(h.count + 1)
			h.log.WithField("operator", client.Operator).Debug("client connected")
		case client := <-h.unregister:
			h.remove(client)
		case d := <-h.publish:
			for client := range h.clients[d.operator] {
				select {
				case client.Send <- d.payload:
				default:
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) Stop() { close(h.done) }

// Publish queues ev for the operator's connections. It never blocks the caller; events are
// dropped when the queue is full.
func (h *Hub) Publish(operator string, ev listing.Event) {
	payload, err := json.Marshal(Message{Type: MessageListChanged, Data: ev})
	if err != nil {
		h.log.WithError(err).Error("marshal event")
		return
	}
	select {
	case h.publish <- delivery{operator: operator, payload: payload}:
	default:
		h.log.WithField("operator", operator).Warn("event queue full, dropping event")
	}
}

// Connections reports how many clients are connected
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}

func (h *Hub) remove(client *Client) {
	set, ok := h.clients[client.Operator]
	if !ok || !set[client] {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.Operator)
	}
	close(client.Send)
	h.setCount(h.count - 1)
	h.log.WithField("operator", client.Operator).Debug("client disconnected")
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump keeps the connection alive until the peer goes away
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		_ = c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.log.WithError(err).Warn("unexpected close")
			}
			return
		}
	}
}

// ServeWs handles websocket requests from the peer. The token travels in the query string
// because browsers cannot set headers on the upgrade request.
func ServeWs(hub *Hub, c *gin.Context, auth *middleware.Auth) {
	tokenString := c.Query("token")
	if tokenString == "" {
		hub.log.Debug("connection rejected: missing token")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	claims, err := auth.Parse(tokenString)
	if err != nil {
		hub.log.WithError(err).Debug("connection rejected: invalid token")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		hub.log.WithError(err).Warn("upgrade failed")
		return
	}
	client := &Client{Hub: hub, Conn: conn, Operator: claims.Subject, Send: make(chan []byte, sendBuffer)}
	select {
	case hub.register <- client:
	case <-hub.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
