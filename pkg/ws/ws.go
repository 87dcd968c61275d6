// Package ws pushes live store events to connected admin dashboards over
// WebSocket.
//
// The feed is one-directional: the server broadcasts typed JSON events
// (order.created, order.status_changed) and inbound client frames are
// drained only to keep the connection's pong handler alive.
//
//	feed := ws.NewFeed()
//	go feed.Run()
//	feed.Publish("order.created", order)
package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shashiranjanraj/vendora/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins by default — restrict in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SetCheckOrigin replaces the default (allow-all) origin checker.
func SetCheckOrigin(fn func(r *http.Request) bool) {
	upgrader.CheckOrigin = fn
}

// Event is a single feed message as sent on the wire.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
	At   time.Time   `json:"at"`
}

// client is one connected dashboard.
type client struct {
	feed *Feed
	conn *websocket.Conn
	send chan []byte
}

func (c *client) readPump() {
	defer func() {
		c.feed.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("ws: unexpected close", "error", err)
			}
			break
		}
		// Inbound frames are ignored; the feed is server-push only.
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Feed maintains the set of connected dashboards and fans events out to them.
type Feed struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
}

// NewFeed creates a Feed. Call feed.Run() in a goroutine at startup.
func NewFeed() *Feed {
	return &Feed{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Run starts the feed event loop. Must be run in its own goroutine.
func (f *Feed) Run() {
	for {
		select {
		case c := <-f.register:
			f.clients[c] = true
			logger.Info("ws: dashboard connected", "total", len(f.clients))

		case c := <-f.unregister:
			if _, ok := f.clients[c]; ok {
				delete(f.clients, c)
				close(c.send)
				logger.Info("ws: dashboard disconnected", "total", len(f.clients))
			}

		case msg := <-f.broadcast:
			for c := range f.clients {
				select {
				case c.send <- msg:
				default:
					close(c.send)
					delete(f.clients, c)
				}
			}
		}
	}
}

// Publish marshals and broadcasts an event to every connected dashboard.
// Events published with no listeners are dropped.
func (f *Feed) Publish(eventType string, data interface{}) {
	raw, err := json.Marshal(Event{Type: eventType, Data: data, At: time.Now()})
	if err != nil {
		logger.Error("ws: marshal event", "type", eventType, "error", err)
		return
	}
	select {
	case f.broadcast <- raw:
	default:
		logger.Warn("ws: broadcast buffer full, dropping event", "type", eventType)
	}
}

// ClientCount returns the number of currently connected dashboards.
func (f *Feed) ClientCount() int { return len(f.clients) }

// Upgrade upgrades an HTTP connection to a WebSocket and subscribes it to
// the feed.
func (f *Feed) Upgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("ws: upgrade failed", "error", err)
		return
	}
	c := &client{feed: f, conn: conn, send: make(chan []byte, 256)}
	f.register <- c
	go c.writePump()
	go c.readPump()
}
