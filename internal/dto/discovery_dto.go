package dto

import (
	"github.com/google/uuid"
)

type DiscoveryCard struct {
	UserId         uuid.UUID       `json:"user_id"`
	Name           string          `json:"name"`
	Age            int             `json:"age,omitempty"`
	Location       string          `json:"location,omitempty"`
	Title          string          `json:"title,omitempty"`
	Company        string          `json:"company,omitempty"`
	Skills         []string        `json:"skills"`
	Experience     string          `json:"experience,omitempty"`
	Startup        string          `json:"startup,omitempty"`
	LookingFor     string          `json:"looking_for,omitempty"`
	Exploring      string          `json:"exploring,omitempty"`
	InterestedIn   []string        `json:"interested_in"`
	Photos         []string        `json:"photos"`
	Prompts        []ProfilePrompt `json:"prompts"`
	Basics         ProfileBasics   `json:"basics"`
	RelevanceScore *float64        `json:"relevance_score,omitempty"`
}

type DiscoveryFeedResponse struct {
	Cards []DiscoveryCard `json:"cards"`
}

type PassRequest struct {
	UserId uuid.UUID `json:"user_id" validate:"required"`
}

type SectionResponseRequest struct {
	ToUserId uuid.UUID `json:"to_user_id" validate:"required"`
	Section  string    `json:"section" validate:"required"`
	Text     string    `json:"text" validate:"required,max=500"`
}

type SectionResponseResult struct {
	Id      uuid.UUID `json:"id"`
	Matched bool      `json:"matched"`
	MatchId uuid.UUID `json:"match_id,omitempty"`
}
