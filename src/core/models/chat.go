package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID         int       `gorm:"column:id;type:serial;primaryKey" json:"id"`
	CollegeKey string    `gorm:"column:college_key;type:text;not null;index" json:"college_key"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Message    string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
