package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Message         string     `json:"message" validate:"required"`
	ChatSessionId   *uuid.UUID `json:"session_id"`
	SelectedSubject string     `json:"selected_subject"`
	ResponseMode    string     `json:"response_mode" validate:"omitempty,oneof=fast thinking pro"`
	ChatMode        string     `json:"chat_mode" validate:"omitempty,oneof=study casual"`
	ActiveTool      string     `json:"active_tool"`
}

type ChatReplyBody struct {
	Answer          string   `json:"answer"`
	NextSuggestions []string `json:"next_suggestions"`
}

type SendChatResponse struct {
	Reply         string        `json:"reply"`
	Response      ChatReplyBody `json:"response"`
	ChatSessionId uuid.UUID     `json:"session_id"`
}

type ChatHistoryResponse struct {
	Id         uuid.UUID `json:"id"`
	Sender     string    `json:"sender"`
	Text       string    `json:"text"`
	IntentType string    `json:"intent_type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type SessionResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type RenameSessionRequest struct {
	Title string `json:"title" validate:"required"`
}

type RenameSessionResponse struct {
	Message   string    `json:"message"`
	SessionId uuid.UUID `json:"session_id"`
	NewTitle  string    `json:"new_title"`
}
