package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CollaborationMethod rows only exist for custom methods. Built-in
// methods live in the catalog package and never touch the database.
type CollaborationMethod struct {
	Id              int            `gorm:"primaryKey;autoIncrement"`
	Title           string         `gorm:"type:varchar(255);not null"`
	Description     string         `gorm:"type:text;not null"`
	Duration        string         `gorm:"type:varchar(100)"`
	Difficulty      string         `gorm:"type:varchar(50);not null"`
	Category        string         `gorm:"type:varchar(50);not null"`
	Steps           datatypes.JSON `gorm:"type:jsonb;not null"`
	Outcome         string         `gorm:"type:text"`
	SuccessCriteria datatypes.JSON `gorm:"type:jsonb;not null"`
	AuthorId        *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (CollaborationMethod) TableName() string {
	return "collaboration_methods"
}

type ActiveCollaboration struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MatchId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	OwnerId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	PartnerId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	MethodId       int            `gorm:"not null"`
	Title          string         `gorm:"type:varchar(255);not null"`
	Category       string         `gorm:"type:varchar(50);not null"`
	Status         string         `gorm:"type:varchar(50);not null;default:'Proposed'"`
	StartDate      string         `gorm:"type:varchar(50)"`
	DueDate        string         `gorm:"type:varchar(50)"`
	Progress       int            `gorm:"default:0"`
	CompletedSteps datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	StepNotes      datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	StepCriteria   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (ActiveCollaboration) TableName() string {
	return "active_collaborations"
}
