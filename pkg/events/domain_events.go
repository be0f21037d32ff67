package events

import (
	"time"

	"github.com/google/uuid"
)

// Event type codes. The notification worker maps these to the
// notification_types registry by code.
const (
	TypeMatchCreated    = "MATCH_CREATED"
	TypeMessageSent     = "MESSAGE_SENT"
	TypeCollabProposed  = "COLLAB_PROPOSED"
	TypeCollabAccepted  = "COLLAB_ACCEPTED"
	TypeCollabCancelled = "COLLAB_CANCELLED"
	TypeCollabStepSaved = "COLLAB_STEP_SAVED"
	TypeCollabCompleted = "COLLAB_COMPLETED"
)

// Payload key conventions the notification worker relies on:
// actor_id is who acted, recipient_id is who should hear about it,
// user_a_id/user_b_id carry both sides for PAIR-targeted events, and
// entity_type/entity_id drive the action_url deep link.

func NewMatchCreated(matchId, userAId, userBId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeMatchCreated,
		Data: map[string]interface{}{
			"event_type":  TypeMatchCreated,
			"match_id":    matchId.String(),
			"user_a_id":   userAId.String(),
			"user_b_id":   userBId.String(),
			"entity_type": "match",
			"entity_id":   matchId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewMessageSent(matchId, senderId, recipientId uuid.UUID, preview string) Event {
	return BaseEvent{
		Type: TypeMessageSent,
		Data: map[string]interface{}{
			"event_type":   TypeMessageSent,
			"match_id":     matchId.String(),
			"actor_id":     senderId.String(),
			"recipient_id": recipientId.String(),
			"preview":      preview,
			"entity_type":  "match",
			"entity_id":    matchId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func newCollabEvent(eventType string, collabId, actorId, recipientId uuid.UUID, extra map[string]interface{}) Event {
	data := map[string]interface{}{
		"event_type":   eventType,
		"collab_id":    collabId.String(),
		"actor_id":     actorId.String(),
		"recipient_id": recipientId.String(),
		"entity_type":  "collab",
		"entity_id":    collabId.String(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func NewCollabProposed(collabId, proposerId, partnerId uuid.UUID, title string) Event {
	return newCollabEvent(TypeCollabProposed, collabId, proposerId, partnerId, map[string]interface{}{
		"title": title,
	})
}

func NewCollabAccepted(collabId, accepterId, partnerId uuid.UUID, title string) Event {
	return newCollabEvent(TypeCollabAccepted, collabId, accepterId, partnerId, map[string]interface{}{
		"title": title,
	})
}

func NewCollabCancelled(collabId, actorId, partnerId uuid.UUID, title string) Event {
	return newCollabEvent(TypeCollabCancelled, collabId, actorId, partnerId, map[string]interface{}{
		"title": title,
	})
}

func NewCollabStepSaved(collabId, actorId, partnerId uuid.UUID, stepIndex, progress int) Event {
	return newCollabEvent(TypeCollabStepSaved, collabId, actorId, partnerId, map[string]interface{}{
		"step_index": stepIndex,
		"progress":   progress,
	})
}

func NewCollabCompleted(collabId, actorId, partnerId uuid.UUID, title string) Event {
	return newCollabEvent(TypeCollabCompleted, collabId, actorId, partnerId, map[string]interface{}{
		"title": title,
	})
}
