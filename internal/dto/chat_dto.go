package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	MatchId uuid.UUID
	Text    string `json:"text" validate:"required,max=2000"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	MatchId   uuid.UUID `json:"match_id"`
	SenderId  uuid.UUID `json:"sender_id"`
	Text      string    `json:"text"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ListMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

type MarkReadResponse struct {
	MatchId uuid.UUID `json:"match_id"`
	Updated int       `json:"updated"`
}
