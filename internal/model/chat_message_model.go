package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessage struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatSessionId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Sender          string    `gorm:"type:varchar(10);not null"`
	Text            string    `gorm:"type:text;not null"`
	IntentType      *string   `gorm:"type:varchar(20)"`
	ConfidenceScore *float64
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
