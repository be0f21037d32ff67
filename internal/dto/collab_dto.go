package dto

import (
	"time"

	"github.com/google/uuid"
)

// Method catalog

type CollabStep struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	SuccessCriteria []string `json:"success_criteria" validate:"required,min=1,dive,required"`
}

type MethodResponse struct {
	Id              int          `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Duration        string       `json:"duration"`
	Difficulty      string       `json:"difficulty"`
	Category        string       `json:"category"`
	Steps           []CollabStep `json:"steps"`
	Outcome         string       `json:"outcome"`
	SuccessCriteria []string     `json:"success_criteria"`
	Custom          bool         `json:"custom"`
}

type ListMethodsResponse struct {
	Methods []MethodResponse `json:"methods"`
}

type CreateMethodRequest struct {
	Title           string       `json:"title" validate:"required,min=3"`
	Description     string       `json:"description" validate:"required"`
	Duration        string       `json:"duration"`
	Difficulty      string       `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	Category        string       `json:"category" validate:"required,oneof=Technical Business Product Design"`
	Steps           []CollabStep `json:"steps" validate:"required,min=1,dive"`
	Outcome         string       `json:"outcome"`
	SuccessCriteria []string     `json:"success_criteria" validate:"required,min=1,dive,required"`
}

type CreateMethodResponse struct {
	Id int `json:"id"`
}

// Active collaborations

type ActiveCollabResponse struct {
	Id             uuid.UUID      `json:"id"`
	MatchId        uuid.UUID      `json:"match_id"`
	PartnerId      uuid.UUID      `json:"partner_id"`
	PartnerName    string         `json:"partner_name"`
	PartnerPhoto   string         `json:"partner_photo,omitempty"`
	MethodId       int            `json:"method_id"`
	Title          string         `json:"title"`
	Category       string         `json:"category"`
	Status         string         `json:"status"`
	StartDate      string         `json:"start_date"`
	DueDate        string         `json:"due_date"`
	Progress       int            `json:"progress"`
	TotalSteps     int            `json:"total_steps"`
	CompletedSteps []int          `json:"completed_steps"`
	StepNotes      map[int]string `json:"step_notes"`
	StepCriteria   map[int][]bool `json:"step_criteria"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at"`
}

type ListActiveCollabsResponse struct {
	Collabs []ActiveCollabResponse `json:"collabs"`
}

type ProposeCollabRequest struct {
	MatchId  uuid.UUID `json:"match_id" validate:"required"`
	MethodId int       `json:"method_id" validate:"required"`
	DueDate  string    `json:"due_date"`
}

type ProposeCollabResponse struct {
	Id uuid.UUID `json:"id"`
}

// Step editor

type OpenStepRequest struct {
	CollabId  uuid.UUID
	StepIndex int
}

type StepSessionResponse struct {
	CollabId   uuid.UUID `json:"collab_id"`
	StepIndex  int       `json:"step_index"`
	Notes      string    `json:"notes"`
	Completion []bool    `json:"completion"`
}

type ToggleCriterionRequest struct {
	CriterionIndex *int `json:"criterion_index" validate:"required"`
}

type SaveStepRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

type SaveStepResponse struct {
	CollabId       uuid.UUID `json:"collab_id"`
	StepIndex      int       `json:"step_index"`
	StepCompleted  bool      `json:"step_completed"`
	CompletedSteps []int     `json:"completed_steps"`
	Progress       int       `json:"progress"`
}
