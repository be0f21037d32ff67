package catalog

import (
	"testing"

	"cofoundr-be/internal/entity"
)

func TestFind(t *testing.T) {
	m, ok := Find(1)
	if !ok {
		t.Fatal("Find(1) not found")
	}
	if m.Title != "Code Review Challenge" {
		t.Errorf("Title = %q, want Code Review Challenge", m.Title)
	}
	if len(m.Steps) != 5 {
		t.Errorf("len(Steps) = %d, want 5", len(m.Steps))
	}

	if _, ok := Find(999); ok {
		t.Error("Find(999) should not be found")
	}
}

func TestAllBuiltinsAreValid(t *testing.T) {
	methods := All()
	if len(methods) != 6 {
		t.Fatalf("len(All()) = %d, want 6", len(methods))
	}
	for _, m := range methods {
		if err := Validate(&m); err != nil {
			t.Errorf("built-in method %d %q fails validation: %v", m.Id, m.Title, err)
		}
		if len(m.SuccessCriteria) != 5 {
			t.Errorf("method %d: len(SuccessCriteria) = %d, want 5", m.Id, len(m.SuccessCriteria))
		}
	}
}

func TestBuiltinIdsStayBelowCustomRange(t *testing.T) {
	seen := map[int]bool{}
	for _, m := range All() {
		if seen[m.Id] {
			t.Errorf("duplicate built-in id %d", m.Id)
		}
		seen[m.Id] = true
		if m.Id >= CustomMethodIdStart {
			t.Errorf("built-in id %d collides with the custom id range starting at %d", m.Id, CustomMethodIdStart)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := func() *entity.CollaborationMethod {
		return &entity.CollaborationMethod{
			Title:       "Design Critique",
			Description: "Critique each other's design work.",
			Duration:    "1-2 hours",
			Difficulty:  entity.DifficultyEasy,
			Category:    entity.CategoryDesign,
			Steps: []entity.CollabStep{
				{Title: "Share work", Description: "Share a recent design", SuccessCriteria: []string{"Both share a design"}},
			},
			Outcome:         "Assess design sensibility",
			SuccessCriteria: []string{"Both provide feedback"},
		}
	}

	if err := Validate(valid()); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*entity.CollaborationMethod)
	}{
		{"missing title", func(m *entity.CollaborationMethod) { m.Title = "" }},
		{"missing description", func(m *entity.CollaborationMethod) { m.Description = "" }},
		{"unknown difficulty", func(m *entity.CollaborationMethod) { m.Difficulty = "Impossible" }},
		{"unknown category", func(m *entity.CollaborationMethod) { m.Category = "Legal" }},
		{"no steps", func(m *entity.CollaborationMethod) { m.Steps = nil }},
		{"step without title", func(m *entity.CollaborationMethod) { m.Steps[0].Title = "" }},
		{"step without criteria", func(m *entity.CollaborationMethod) { m.Steps[0].SuccessCriteria = nil }},
		{"empty step criterion", func(m *entity.CollaborationMethod) { m.Steps[0].SuccessCriteria = []string{""} }},
		{"no overall criteria", func(m *entity.CollaborationMethod) { m.SuccessCriteria = nil }},
		{"empty overall criterion", func(m *entity.CollaborationMethod) { m.SuccessCriteria = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			if err := Validate(m); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
