package collabflow

import "errors"

// MaxNoteLength caps a step note. The mobile client enforces the same limit
// on input; the server treats it as a data-integrity rule.
const MaxNoteLength = 500

var (
	ErrCriterionOutOfRange = errors.New("collabflow: criterion index out of range")
	ErrNoteTooLong         = errors.New("collabflow: note exceeds maximum length")
)

// Session is one step-editing session: the draft state a user accumulates
// between opening a step and saving or discarding it. Drafts never touch the
// stored collaboration until committed.
type Session struct {
	CollabId        string
	StepIndex       int
	DraftNotes      string
	DraftCompletion []bool
}

// NewSession seeds a session from the stored note and criteria row for the
// step, applying the SeedDraft staleness rule.
func NewSession(collabId string, stepIndex int, storedNotes string, storedCompletion []bool, criteriaCount int) *Session {
	return &Session{
		CollabId:        collabId,
		StepIndex:       stepIndex,
		DraftNotes:      storedNotes,
		DraftCompletion: SeedDraft(storedCompletion, criteriaCount),
	}
}

// Toggle flips one draft criterion. Indices outside the draft are rejected;
// the row never grows to accommodate them.
func (s *Session) Toggle(i int) error {
	if i < 0 || i >= len(s.DraftCompletion) {
		return ErrCriterionOutOfRange
	}
	s.DraftCompletion[i] = !s.DraftCompletion[i]
	return nil
}

// SetNotes replaces the draft note, enforcing MaxNoteLength.
func (s *Session) SetNotes(notes string) error {
	if len([]rune(notes)) > MaxNoteLength {
		return ErrNoteTooLong
	}
	s.DraftNotes = notes
	return nil
}
