package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Match struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserAId     uuid.UUID      `gorm:"type:uuid;not null;index:idx_matches_pair,priority:1"`
	UserBId     uuid.UUID      `gorm:"type:uuid;not null;index:idx_matches_pair,priority:2"`
	Designation string         `gorm:"type:varchar(50);not null;default:'In Consideration'"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Match) TableName() string {
	return "matches"
}

type Message struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MatchId   uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_match_created,priority:1"`
	SenderId  uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_messages_match_created,priority:2"`
}

func (Message) TableName() string {
	return "messages"
}

type SectionResponse struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FromUserId uuid.UUID `gorm:"type:uuid;not null;index"`
	ToUserId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Section    string    `gorm:"type:varchar(100);not null"`
	Text       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (SectionResponse) TableName() string {
	return "section_responses"
}

type Pass struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_passes_user_passed,priority:1"`
	PassedId  uuid.UUID `gorm:"type:uuid;not null;index:idx_passes_user_passed,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Pass) TableName() string {
	return "passes"
}
