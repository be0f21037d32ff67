package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantUser matches collaborations the user takes part in, as
// proposer or as partner.
type ParticipantUser struct {
	UserID uuid.UUID
}

func (s ParticipantUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ? OR partner_id = ?", s.UserID, s.UserID)
}

type ByStatuses struct {
	Statuses []string
}

func (s ByStatuses) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

// ByMethodKey filters methods by integer primary key. Methods use serial
// ids rather than uuids, so the common ByID spec does not apply.
type ByMethodKey struct {
	ID int
}

func (s ByMethodKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}
