package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvolvingUser matches rows where the user sits on either side of the pair.
type InvolvingUser struct {
	UserID uuid.UUID
}

func (s InvolvingUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_a_id = ? OR user_b_id = ?", s.UserID, s.UserID)
}

// ByPair matches the pair in either stored order.
type ByPair struct {
	First  uuid.UUID
	Second uuid.UUID
}

func (s ByPair) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(user_a_id = ? AND user_b_id = ?) OR (user_a_id = ? AND user_b_id = ?)",
		s.First, s.Second, s.Second, s.First)
}

type ByDesignation struct {
	Designation string
}

func (s ByDesignation) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("designation = ?", s.Designation)
}

type ByMatchID struct {
	MatchID uuid.UUID
}

func (s ByMatchID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("match_id = ?", s.MatchID)
}

type BySenderID struct {
	SenderID uuid.UUID
}

func (s BySenderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_id = ?", s.SenderID)
}

type UnreadOnly struct{}

func (s UnreadOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}

// Section response specs

type FromUser struct {
	UserID uuid.UUID
}

func (s FromUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("from_user_id = ?", s.UserID)
}

type ToUser struct {
	UserID uuid.UUID
}

func (s ToUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("to_user_id = ?", s.UserID)
}
