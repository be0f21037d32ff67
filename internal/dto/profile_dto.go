package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfilePrompt struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type ProfileBasics struct {
	Height     string `json:"height"`
	Education  string `json:"education"`
	JobTitle   string `json:"job_title"`
	Religion   string `json:"religion"`
	LookingFor string `json:"looking_for"`
}

type UpsertProfileRequest struct {
	Name         string          `json:"name" validate:"required,min=2"`
	Age          int             `json:"age" validate:"omitempty,gte=18,lte=99"`
	Location     string          `json:"location"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Skills       []string        `json:"skills" validate:"max=20"`
	Experience   string          `json:"experience"`
	Startup      string          `json:"startup"`
	LookingFor   string          `json:"looking_for"`
	Exploring    string          `json:"exploring"`
	InterestedIn []string        `json:"interested_in" validate:"max=10"`
	Photos       []string        `json:"photos" validate:"max=6,dive,url"`
	Prompts      []ProfilePrompt `json:"prompts" validate:"max=5,dive"`
	Basics       ProfileBasics   `json:"basics"`
}

type ProfileResponse struct {
	UserId               uuid.UUID       `json:"user_id"`
	Name                 string          `json:"name"`
	Age                  int             `json:"age,omitempty"`
	Location             string          `json:"location,omitempty"`
	Title                string          `json:"title,omitempty"`
	Company              string          `json:"company,omitempty"`
	Skills               []string        `json:"skills"`
	Experience           string          `json:"experience,omitempty"`
	Startup              string          `json:"startup,omitempty"`
	LookingFor           string          `json:"looking_for,omitempty"`
	Exploring            string          `json:"exploring,omitempty"`
	InterestedIn         []string        `json:"interested_in"`
	Photos               []string        `json:"photos"`
	Prompts              []ProfilePrompt `json:"prompts"`
	Basics               ProfileBasics   `json:"basics"`
	IsOnboardingComplete bool            `json:"is_onboarding_complete"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            *time.Time      `json:"updated_at"`
}

type AddPhotoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type RemovePhotoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// PublishEmbedProfileMessage is the payload queued for the embedding
// worker whenever a profile's text changes.
type PublishEmbedProfileMessage struct {
	UserId uuid.UUID `json:"user_id"`
}

type CompleteOnboardingResponse struct {
	UserId               uuid.UUID `json:"user_id"`
	IsOnboardingComplete bool      `json:"is_onboarding_complete"`
}
