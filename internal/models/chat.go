package models

import (
	"github.com/jinzhu/gorm"

	"brigade/internal/assistant"
)

// ChatMessage persists one turn of an assistant conversation.
type ChatMessage struct {
	gorm.Model
	RestaurantID uint   `json:"restaurant_id"`
	SessionID    string `json:"session_id" gorm:"index"`
	Role         string `json:"role"`
	Content      string `json:"content" gorm:"type:text"`
	Category     string `json:"category"`
}

// TableName sets the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// Turn converts the stored message into the assistant's history form.
func (m *ChatMessage) Turn() assistant.ConversationTurn {
	return assistant.ConversationTurn{Role: m.Role, Content: m.Content}
}
