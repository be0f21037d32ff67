package dto

import (
	"time"

	"github.com/google/uuid"
)

type MatchResponse struct {
	Id           uuid.UUID  `json:"id"`
	PartnerId    uuid.UUID  `json:"partner_id"`
	PartnerName  string     `json:"partner_name"`
	PartnerPhoto string     `json:"partner_photo,omitempty"`
	Designation  string     `json:"designation"`
	LastMessage  string     `json:"last_message,omitempty"`
	UnreadCount  int        `json:"unread_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type ListMatchesResponse struct {
	Matches []MatchResponse `json:"matches"`
}

type UpdateDesignationRequest struct {
	Id          uuid.UUID
	Designation string `json:"designation" validate:"required,oneof='In Consideration' 'In Queue' 'In Collab' 'In Waiting' 'Closed'"`
}

type UpdateDesignationResponse struct {
	Id          uuid.UUID `json:"id"`
	Designation string    `json:"designation"`
}
