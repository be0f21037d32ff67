package collabflow

import (
	"testing"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"none complete", 0, 5, 0},
		{"one of five", 1, 5, 20},
		{"three of five", 3, 5, 60},
		{"four of five", 4, 5, 80},
		{"all complete", 5, 5, 100},
		{"two of three rounds up", 2, 3, 67},
		{"one of three rounds down", 1, 3, 33},
		{"one of six rounds half", 1, 6, 17},
		{"zero total", 3, 0, 0},
		{"negative total", 3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.completed, tt.total)
			if got != tt.want {
				t.Errorf("Progress(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

func TestAllDone(t *testing.T) {
	tests := []struct {
		name     string
		criteria []bool
		want     bool
	}{
		{"all true", []bool{true, true, true}, true},
		{"one false", []bool{true, false, true}, false},
		{"all false", []bool{false, false}, false},
		{"single true", []bool{true}, true},
		{"empty", []bool{}, true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllDone(tt.criteria); got != tt.want {
				t.Errorf("AllDone(%v) = %v, want %v", tt.criteria, got, tt.want)
			}
		})
	}
}

func TestSeedDraft(t *testing.T) {
	t.Run("matching length reuses stored values", func(t *testing.T) {
		stored := []bool{true, false, true}
		draft := SeedDraft(stored, 3)
		if len(draft) != 3 {
			t.Fatalf("len = %d, want 3", len(draft))
		}
		for i := range stored {
			if draft[i] != stored[i] {
				t.Errorf("draft[%d] = %v, want %v", i, draft[i], stored[i])
			}
		}
		// draft must be a copy, not an alias
		draft[0] = false
		if !stored[0] {
			t.Error("mutating the draft changed the stored row")
		}
	})

	t.Run("stale shorter row resets to all false", func(t *testing.T) {
		draft := SeedDraft([]bool{true, true}, 4)
		if len(draft) != 4 {
			t.Fatalf("len = %d, want 4", len(draft))
		}
		for i, v := range draft {
			if v {
				t.Errorf("draft[%d] = true, want false", i)
			}
		}
	})

	t.Run("stale longer row resets to all false", func(t *testing.T) {
		draft := SeedDraft([]bool{true, true, true, true}, 3)
		if len(draft) != 3 {
			t.Fatalf("len = %d, want 3", len(draft))
		}
		for i, v := range draft {
			if v {
				t.Errorf("draft[%d] = true, want false", i)
			}
		}
	})

	t.Run("no stored row", func(t *testing.T) {
		draft := SeedDraft(nil, 3)
		if len(draft) != 3 {
			t.Fatalf("len = %d, want 3", len(draft))
		}
	})
}

func TestReconcileCompleted(t *testing.T) {
	tests := []struct {
		name      string
		completed []int
		stepIndex int
		allDone   bool
		want      []int
	}{
		{"add new step", []int{0, 1}, 2, true, []int{0, 1, 2}},
		{"add is idempotent", []int{0, 1, 2}, 2, true, []int{0, 1, 2}},
		{"remove present step", []int{0, 1, 2}, 1, false, []int{0, 2}},
		{"remove absent step", []int{0, 2}, 1, false, []int{0, 2}},
		{"add to empty", nil, 0, true, []int{0}},
		{"remove from empty", nil, 0, false, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileCompleted(tt.completed, tt.stepIndex, tt.allDone)
			if len(got) != len(tt.want) {
				t.Fatalf("ReconcileCompleted = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ReconcileCompleted = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}
