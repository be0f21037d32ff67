// Package collabflow holds the pure bookkeeping behind collaboration
// progress tracking: progress derivation, criteria completion, and the
// transient step-editing session. It has no storage or transport concerns so
// the rules are testable on their own.
package collabflow

import "math"

// Progress returns the completion percentage for completed steps out of
// total, using round-half-up so displayed values match what users expect
// (2 of 3 steps is 67, not 66). A non-positive total yields 0.
func Progress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(completed) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// AllDone reports whether every criterion flag is set. An empty row counts
// as done, matching the "every" semantics the rest of the tracker assumes.
func AllDone(criteria []bool) bool {
	for _, done := range criteria {
		if !done {
			return false
		}
	}
	return true
}

// SeedDraft prepares the editable criteria row for a step. A stored row is
// reused only when its length matches the step's current criteria count;
// anything else is stale (the method's criteria changed) and resets to a
// fresh all-false row of the right length.
func SeedDraft(stored []bool, criteriaCount int) []bool {
	if criteriaCount < 0 {
		criteriaCount = 0
	}
	if len(stored) == criteriaCount {
		draft := make([]bool, criteriaCount)
		copy(draft, stored)
		return draft
	}
	return make([]bool, criteriaCount)
}

// ReconcileCompleted adds or removes stepIndex from the completed set so
// that membership matches allDone. The slice keeps its existing order and
// never holds duplicates.
func ReconcileCompleted(completed []int, stepIndex int, allDone bool) []int {
	idx := -1
	for i, s := range completed {
		if s == stepIndex {
			idx = i
			break
		}
	}

	if allDone {
		if idx >= 0 {
			return completed
		}
		return append(completed, stepIndex)
	}

	if idx < 0 {
		return completed
	}
	out := make([]int, 0, len(completed)-1)
	out = append(out, completed[:idx]...)
	return append(out, completed[idx+1:]...)
}
