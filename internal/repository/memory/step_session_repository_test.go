package memory

import (
	"testing"

	"cofoundr-be/pkg/collabflow"
)

func TestStepSessionRepository(t *testing.T) {
	repo := NewStepSessionRepository()
	userId := "7f9c8a1e-0000-0000-0000-000000000001"

	if _, found := repo.Get(userId); found {
		t.Fatal("expected no session before Save")
	}

	session := collabflow.NewSession("collab-1", 0, "", nil, 3)
	repo.Save(userId, session)

	got, found := repo.Get(userId)
	if !found {
		t.Fatal("expected session after Save")
	}
	if got != session {
		t.Error("Get returned a different session than saved")
	}

	// Saving again replaces the open session
	replacement := collabflow.NewSession("collab-1", 1, "notes", []bool{true}, 1)
	repo.Save(userId, replacement)
	got, _ = repo.Get(userId)
	if got != replacement {
		t.Error("Save did not replace the previous session")
	}

	repo.Delete(userId)
	if _, found := repo.Get(userId); found {
		t.Error("expected no session after Delete")
	}

	// Deleting a missing session is a no-op
	repo.Delete("unknown-user")
}
