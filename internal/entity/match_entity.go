package entity

import (
	"time"

	"github.com/google/uuid"
)

type MatchDesignation string

const (
	DesignationInConsideration MatchDesignation = "In Consideration"
	DesignationInQueue         MatchDesignation = "In Queue"
	DesignationInCollab        MatchDesignation = "In Collab"
	DesignationInWaiting       MatchDesignation = "In Waiting"
	DesignationClosed          MatchDesignation = "Closed"
)

// Match connects two users who showed mutual interest. UserAId/UserBId are
// stored in creation order; either side may look the match up.
type Match struct {
	Id           uuid.UUID
	UserAId      uuid.UUID
	UserBId      uuid.UUID
	Designation  MatchDesignation
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// OtherUser returns the counterpart of userId in this match.
func (m *Match) OtherUser(userId uuid.UUID) uuid.UUID {
	if m.UserAId == userId {
		return m.UserBId
	}
	return m.UserAId
}

// Involves reports whether userId is one of the two matched users.
func (m *Match) Involves(userId uuid.UUID) bool {
	return m.UserAId == userId || m.UserBId == userId
}

type Message struct {
	Id        uuid.UUID
	MatchId   uuid.UUID
	SenderId  uuid.UUID
	Text      string
	IsRead    bool
	CreatedAt time.Time
}

// SectionResponse records a user reacting to one section of another user's
// discovery card (startup idea, skills, looking-for, ...). A reciprocal
// response from the target creates a Match.
type SectionResponse struct {
	Id         uuid.UUID
	FromUserId uuid.UUID
	ToUserId   uuid.UUID
	Section    string
	Text       string
	CreatedAt  time.Time
}

// Pass records a left swipe so the profile is not shown again.
type Pass struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	PassedId   uuid.UUID
	CreatedAt  time.Time
}
