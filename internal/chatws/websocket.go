package chatws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"brigade/internal/assistant"
	"brigade/internal/models"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Hub serves live assistant chat sessions over WebSocket.
type Hub struct {
	db   *gorm.DB
	chef *assistant.Service
	log  *zap.Logger
}

// NewHub creates a chat hub over the assistant service.
func NewHub(db *gorm.DB, chef *assistant.Service, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{db: db, chef: chef, log: log}
}

// connection maintains one WebSocket chat session with a client.
type connection struct {
	conn *websocket.Conn
	send chan []byte
	mu   sync.Mutex
	hub  *Hub
}

// chatRequest is one inbound frame from the client.
type chatRequest struct {
	RestaurantID uint   `json:"restaurant_id"`
	SessionID    string `json:"session_id"`
	Message      string `json:"message"`
	Length       string `json:"length"`
}

// chatReply is one outbound frame to the client.
type chatReply struct {
	SessionID string                  `json:"session_id,omitempty"`
	Response  *assistant.ChefResponse `json:"response,omitempty"`
	Error     string                  `json:"error,omitempty"`
}

// Handle upgrades the request and starts the session pumps.
func (h *Hub) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("failed to upgrade connection", zap.Error(err))
		return
	}

	session := &connection{
		conn: conn,
		send: make(chan []byte, 16),
		hub:  h,
	}

	go session.writePump()
	go session.readPump()
}

// readPump pumps messages from the WebSocket connection to the assistant
func (c *connection) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(64 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn("websocket error", zap.Error(err))
			}
			break
		}
		c.handleMessage(message)
	}
}

// writePump pumps replies to the WebSocket connection
func (c *connection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *connection) handleMessage(raw []byte) {
	var req chatRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.reply(chatReply{Error: "invalid message format"})
		return
	}
	if req.Message == "" || req.RestaurantID == 0 {
		c.reply(chatReply{Error: "restaurant_id and message are required"})
		return
	}

	var restaurant models.Restaurant
	if err := c.hub.db.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.reply(chatReply{Error: "restaurant not found"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var history []assistant.ConversationTurn
	var stored []models.ChatMessage
	if err := c.hub.db.Where("session_id = ?", sessionID).Order("id asc").Find(&stored).Error; err == nil {
		for i := range stored {
			history = append(history, stored[i].Turn())
		}
	}

	resp, err := c.hub.chef.GetAdvice(context.Background(), req.Message, restaurant.Profile(), history, assistant.LengthPreference(req.Length))
	if err != nil {
		c.reply(chatReply{SessionID: sessionID, Error: err.Error()})
		return
	}

	c.hub.db.Create(&models.ChatMessage{
		RestaurantID: restaurant.ID,
		SessionID:    sessionID,
		Role:         assistant.RoleUser,
		Content:      req.Message,
	})
	c.hub.db.Create(&models.ChatMessage{
		RestaurantID: restaurant.ID,
		SessionID:    sessionID,
		Role:         assistant.RoleAssistant,
		Content:      resp.Content,
		Category:     string(resp.Category),
	})

	c.reply(chatReply{SessionID: sessionID, Response: resp})
}

func (c *connection) reply(r chatReply) {
	payload, err := json.Marshal(r)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case c.send <- payload:
	default:
		c.hub.log.Warn("dropping reply, send buffer full")
	}
}
