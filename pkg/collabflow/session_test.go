package collabflow

import (
	"strings"
	"testing"
)

func TestNewSessionSeeding(t *testing.T) {
	t.Run("reuses matching stored row", func(t *testing.T) {
		s := NewSession("c1", 0, "notes", []bool{true, false, true}, 3)
		if s.DraftNotes != "notes" {
			t.Errorf("DraftNotes = %q, want %q", s.DraftNotes, "notes")
		}
		want := []bool{true, false, true}
		for i := range want {
			if s.DraftCompletion[i] != want[i] {
				t.Errorf("DraftCompletion = %v, want %v", s.DraftCompletion, want)
				break
			}
		}
	})

	t.Run("stale row reseeds all false at new length", func(t *testing.T) {
		// stored row has 2 flags but the step now defines 4 criteria
		s := NewSession("c1", 2, "", []bool{true, true}, 4)
		if len(s.DraftCompletion) != 4 {
			t.Fatalf("len = %d, want 4", len(s.DraftCompletion))
		}
		for i, v := range s.DraftCompletion {
			if v {
				t.Errorf("DraftCompletion[%d] = true, want false", i)
			}
		}
	})
}

func TestSessionToggle(t *testing.T) {
	s := NewSession("c1", 0, "", nil, 3)

	if err := s.Toggle(1); err != nil {
		t.Fatalf("Toggle(1) error: %v", err)
	}
	if !s.DraftCompletion[1] {
		t.Error("Toggle(1) did not set the flag")
	}
	if err := s.Toggle(1); err != nil {
		t.Fatalf("Toggle(1) second error: %v", err)
	}
	if s.DraftCompletion[1] {
		t.Error("second Toggle(1) did not clear the flag")
	}

	if err := s.Toggle(3); err != ErrCriterionOutOfRange {
		t.Errorf("Toggle(3) = %v, want ErrCriterionOutOfRange", err)
	}
	if err := s.Toggle(-1); err != ErrCriterionOutOfRange {
		t.Errorf("Toggle(-1) = %v, want ErrCriterionOutOfRange", err)
	}
	if len(s.DraftCompletion) != 3 {
		t.Errorf("out-of-range toggle changed draft length to %d", len(s.DraftCompletion))
	}
}

func TestSessionSetNotes(t *testing.T) {
	s := NewSession("c1", 0, "", nil, 1)

	if err := s.SetNotes(strings.Repeat("a", MaxNoteLength)); err != nil {
		t.Errorf("SetNotes at limit: %v", err)
	}
	if err := s.SetNotes(strings.Repeat("a", MaxNoteLength+1)); err != ErrNoteTooLong {
		t.Errorf("SetNotes over limit = %v, want ErrNoteTooLong", err)
	}
	if len(s.DraftNotes) != MaxNoteLength {
		t.Errorf("rejected note overwrote the draft")
	}
}
