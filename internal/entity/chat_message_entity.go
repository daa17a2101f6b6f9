package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id              uuid.UUID
	ChatSessionId   uuid.UUID
	Sender          string
	Text            string
	IntentType      *string
	ConfidenceScore *float64
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}
