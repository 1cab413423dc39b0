package mockbackend

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tahaburak/would-watch/internal/realtime"
)

type wsClient struct {
	conn   *websocket.Conn
	send   chan []byte
	roomID string
	userID string
}

// hub tracks the set of connected clients per room and fans events out
// to them. A client that cannot keep up is dropped.
type hub struct {
	mu sync.RWMutex

	rooms map[string]map[*wsClient]bool

	logger *slog.Logger
}

func newHub(logger *slog.Logger) *hub {
	return &hub{
		rooms:  make(map[string]map[*wsClient]bool),
		logger: logger,
	}
}

func (h *hub) register(client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[client.roomID]; !ok {
		h.rooms[client.roomID] = make(map[*wsClient]bool)
	}
	h.rooms[client.roomID][client] = true

	h.logger.Info("channel client registered", "room_id", client.roomID, "user_id", client.userID)
}

func (h *hub) remove(client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[client.roomID]; ok {
		if _, present := room[client]; present {
			delete(room, client)
			close(client.send)
		}
		if len(room) == 0 {
			delete(h.rooms, client.roomID)
		}
	}
	h.logger.Info("channel client unregistered", "room_id", client.roomID, "user_id", client.userID)
}

func (h *hub) broadcast(roomID string, event realtime.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	payload, _ := json.Marshal(event)

	if clients, ok := h.rooms[roomID]; ok {
		for client := range clients {
			select {
			case client.send <- payload:
			default:
				close(client.send)
				delete(h.rooms[roomID], client)
			}
		}
	}
}

func (h *hub) startReading(client *wsClient) {
	defer func() {
		h.remove(client)
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *hub) startWriting(client *wsClient) {
	defer client.conn.Close()

	for message := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

func (s *Server) roomChannel(ctx *gin.Context) {
	userID, err := s.tokens.verify(ctx.Query("token"))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid token"})
		return
	}

	roomID := ctx.Param("room_id")
	if _, err := s.store.room(roomID); err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse{Error: "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err, "room_id", roomID)
		return
	}

	client := &wsClient{
		conn:   conn,
		send:   make(chan []byte, 16),
		roomID: roomID,
		userID: userID,
	}
	s.hub.register(client)
	go s.hub.startWriting(client)

	s.hub.broadcast(roomID, realtime.Event{
		Type:   realtime.EventParticipantJoined,
		RoomID: roomID,
		UserID: userID,
	})

	s.hub.startReading(client)

	s.hub.broadcast(roomID, realtime.Event{
		Type:   realtime.EventParticipantLeft,
		RoomID: roomID,
		UserID: userID,
	})
}
