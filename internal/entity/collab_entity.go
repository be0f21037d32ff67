package entity

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string
type CollabCategory string
type CollabStatus string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"

	CategoryTechnical CollabCategory = "Technical"
	CategoryBusiness  CollabCategory = "Business"
	CategoryProduct   CollabCategory = "Product"
	CategoryDesign    CollabCategory = "Design"

	CollabStatusProposed   CollabStatus = "Proposed"
	CollabStatusInProgress CollabStatus = "In Progress"
	CollabStatusCompleted  CollabStatus = "Completed"
	CollabStatusCancelled  CollabStatus = "Cancelled"
)

// CollabStep is one ordered stage of a collaboration method. The step index
// within CollaborationMethod.Steps is the key used by all progress tracking.
type CollabStep struct {
	Title           string
	Description     string
	SuccessCriteria []string
}

// CollaborationMethod is a catalog template describing a structured
// multi-step exercise two matched users perform together. Built-in methods
// are fixed at build time; custom methods are user-authored and persisted.
type CollaborationMethod struct {
	Id              int
	Title           string
	Description     string
	Duration        string
	Difficulty      Difficulty
	Category        CollabCategory
	Steps           []CollabStep
	Outcome         string
	SuccessCriteria []string // method-level, distinct from per-step criteria
	Custom          bool
	AuthorId        *uuid.UUID
	CreatedAt       time.Time
}

// ActiveCollaboration is one in-progress instantiation of a method between a
// matched pair. StepCriteria holds, per step index, one flag per success
// criterion of that step in the method's order. Invariant: a step index is in
// CompletedSteps exactly when every flag in its StepCriteria row is true.
// Progress is derived from CompletedSteps, never set directly.
type ActiveCollaboration struct {
	Id             uuid.UUID
	MatchId        uuid.UUID
	OwnerId        uuid.UUID
	PartnerId      uuid.UUID
	PartnerName    string
	PartnerPhoto   string
	MethodId       int
	Title          string
	Category       CollabCategory
	Status         CollabStatus
	StartDate      string
	DueDate        string
	Progress       int
	CompletedSteps []int
	StepNotes      map[int]string
	StepCriteria   map[int][]bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
