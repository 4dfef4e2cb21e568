package models

import (
	"time"
)

// ChatSession is one conversation between a user and the support assistant.
type ChatSession struct {
	ID        string        `gorm:"primaryKey;column:id" json:"id"`
	OwnerID   string        `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Closed    bool          `gorm:"column:closed;default:false" json:"closed"`
	CreatedAt time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Messages  []ChatMessage `gorm:"foreignKey:SessionID;references:ID" json:"-"`
}

func (ChatSession) TableName() string {
	return "chat_session"
}

// ChatMessage is a single turn in a chat session.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	SessionID string    `gorm:"column:session_id;not null;index" json:"session_id"`
	Role      string    `gorm:"column:role;check:role IN ('user', 'assistant');not null" json:"role"`
	Content   string    `gorm:"type:text;column:content;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_message"
}
