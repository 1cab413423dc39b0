package realtime

import (
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
)

// BaseURLSource yields the backend HTTP base URL; the websocket URL is
// derived from it per subscription.
type BaseURLSource interface {
	BaseURL() string
}

// TokenSource yields the current bearer token for the ?token= query
// parameter the channel endpoint authenticates with.
type TokenSource interface {
	AuthToken() string
}

// Channel is the production Service: one websocket connection per
// subscribed room, all read loops fanning into a single event stream.
type Channel struct {
	base   BaseURLSource
	tokens TokenSource
	dialer *websocket.Dialer
	logger *slog.Logger

	mu     sync.Mutex
	conns  map[string]*websocket.Conn
	events chan Event
}

func NewChannel(base BaseURLSource, tokens TokenSource, logger *slog.Logger) *Channel {
	if logger == nil {
		logger = slog.Default()
	}
	return &Channel{
		base:   base,
		tokens: tokens,
		dialer: websocket.DefaultDialer,
		logger: logger,
		conns:  make(map[string]*websocket.Conn),
		events: make(chan Event, 16),
	}
}

// Subscribe dials the room's channel. Subscribing to an already
// subscribed room is a no-op: one connection, no duplicate delivery.
func (c *Channel) Subscribe(roomID string) error {
	c.mu.Lock()
	if _, ok := c.conns[roomID]; ok {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	target, err := c.wsURL(roomID)
	if err != nil {
		return err
	}

	conn, _, err := c.dialer.Dial(target, nil)
	if err != nil {
		return fmt.Errorf("websocket connection failed: %w", err)
	}

	c.mu.Lock()
	if _, ok := c.conns[roomID]; ok {
		// Lost the race against a concurrent Subscribe for the same room.
		c.mu.Unlock()
		conn.Close()
		return nil
	}
	c.conns[roomID] = conn
	c.mu.Unlock()

	c.logger.Info("subscribed to room channel", "room_id", roomID)
	go c.readLoop(roomID, conn)
	return nil
}

func (c *Channel) Unsubscribe(roomID string) {
	c.mu.Lock()
	conn, ok := c.conns[roomID]
	delete(c.conns, roomID)
	c.mu.Unlock()

	if ok {
		conn.Close()
		c.logger.Info("unsubscribed from room channel", "room_id", roomID)
	}
}

func (c *Channel) Events() <-chan Event {
	return c.events
}

func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for roomID, conn := range c.conns {
		conn.Close()
		delete(c.conns, roomID)
	}
}

func (c *Channel) readLoop(roomID string, conn *websocket.Conn) {
	defer c.Unsubscribe(roomID)

	for {
		var event Event
		if err := conn.ReadJSON(&event); err != nil {
			c.logger.Debug("room channel closed", "room_id", roomID, "error", err)
			return
		}
		if event.RoomID != roomID {
			continue
		}
		select {
		case c.events <- event:
		default:
			// Slow consumer: drop rather than stall the socket.
		}
	}
}

func (c *Channel) wsURL(roomID string) (string, error) {
	u, err := url.Parse(c.base.BaseURL())
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path += "/ws/rooms/" + roomID
	u.RawQuery = "token=" + url.QueryEscape(c.tokens.AuthToken())
	return u.String(), nil
}
