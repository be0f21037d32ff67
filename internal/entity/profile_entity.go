package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProfilePrompt struct {
	Question string
	Answer   string
}

type ProfileBasics struct {
	Height     string
	Education  string
	JobTitle   string
	Religion   string
	LookingFor string
}

// Profile is the public-facing co-founder profile shown on the discovery
// feed. It is keyed by the owning user's id (one row per user).
type Profile struct {
	UserId               uuid.UUID
	Name                 string
	Age                  int
	Location             string
	Title                string
	Company              string
	Skills               []string
	Experience           string
	Startup              string
	LookingFor           string
	Exploring            string
	InterestedIn         []string
	Photos               []string
	Prompts              []ProfilePrompt
	Basics               ProfileBasics
	IsOnboardingComplete bool
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// ProfileEmbedding is the vector representation of a profile's free-text
// sections, used to order the discovery feed by interest similarity.
type ProfileEmbedding struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Document  string
	Embedding []float32
	CreatedAt time.Time
	UpdatedAt *time.Time
}
