package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"reflekt/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgQuestionsReady MessageType = "questions_ready"
	MsgError          MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// QuestionsReadyPayload announces a freshly generated weekly set
type QuestionsReadyPayload struct {
	WeekNumber    int       `json:"weekNumber"`
	Year          int       `json:"year"`
	QuestionCount int       `json:"questionCount"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

// Hub manages WebSocket connections keyed by user. A user may be connected
// from several devices at once; events go to all of them.
type Hub struct {
	userConns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *userMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
	Hub    *Hub
}

type userMessage struct {
	userID  string
	message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		userConns:  make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *userMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.userConns[conn.UserID] == nil {
				h.userConns[conn.UserID] = make(map[*Connection]bool)
			}
			h.userConns[conn.UserID][conn] = true
			h.mu.Unlock()
			log.Printf("User %s connected via WebSocket", conn.UserID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.userConns[conn.UserID]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.userConns, conn.UserID)
					}
					log.Printf("User %s disconnected from WebSocket", conn.UserID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.message)
			for conn := range h.userConns[msg.userID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// NotifyQuestionsReady pushes a questions_ready event to every connection of
// the user (implements service.Notifier)
func (h *Hub) NotifyQuestionsReady(userID string, set *model.GeneratedQuestionSet) {
	data, _ := json.Marshal(QuestionsReadyPayload{
		WeekNumber:    set.WeekNumber,
		Year:          set.Year,
		QuestionCount: len(set.Questions),
		GeneratedAt:   set.GeneratedAt,
	})
	h.broadcast <- &userMessage{
		userID: userID,
		message: &Message{
			Type:    MsgQuestionsReady,
			Payload: data,
		},
	}
}
