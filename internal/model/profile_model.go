package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Profile struct {
	UserId               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name                 string         `gorm:"type:varchar(255);not null"`
	Age                  int            `gorm:"default:0"`
	Location             string         `gorm:"type:varchar(255)"`
	Title                string         `gorm:"type:varchar(255)"`
	Company              string         `gorm:"type:varchar(255)"`
	Skills               datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Experience           string         `gorm:"type:text"`
	Startup              string         `gorm:"type:text"`
	LookingFor           string         `gorm:"type:text"`
	Exploring            string         `gorm:"type:text"`
	InterestedIn         datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Photos               datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Prompts              datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Basics               datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	IsOnboardingComplete bool           `gorm:"default:false"`
	CreatedAt            time.Time      `gorm:"autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime"`
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

func (Profile) TableName() string {
	return "profiles"
}

type ProfileEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"`
	UserId         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

func (ProfileEmbedding) TableName() string {
	return "profile_embeddings"
}
