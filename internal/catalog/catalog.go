// Package catalog holds the built-in collaboration method templates and the
// structural validation applied to user-authored ones.
package catalog

import (
	"errors"
	"fmt"

	"cofoundr-be/internal/entity"
)

var ErrMethodNotFound = errors.New("collaboration method not found")

// CustomMethodIdStart is the first id the database hands out to custom
// methods. Built-in ids stay below it, so the two ranges never collide and
// every method id resolves to exactly one method.
const CustomMethodIdStart = 1000

// Find returns the built-in method with the given id. Custom methods live in
// the database and are resolved by the catalog service, not here.
func Find(id int) (*entity.CollaborationMethod, bool) {
	for i := range builtinMethods {
		if builtinMethods[i].Id == id {
			m := builtinMethods[i]
			return &m, true
		}
	}
	return nil, false
}

// All returns the built-in methods in catalog order.
func All() []entity.CollaborationMethod {
	out := make([]entity.CollaborationMethod, len(builtinMethods))
	copy(out, builtinMethods)
	return out
}

// IsBuiltin reports whether id belongs to the fixed catalog.
func IsBuiltin(id int) bool {
	_, ok := Find(id)
	return ok
}

var validDifficulties = map[entity.Difficulty]bool{
	entity.DifficultyEasy:   true,
	entity.DifficultyMedium: true,
	entity.DifficultyHard:   true,
}

var validCategories = map[entity.CollabCategory]bool{
	entity.CategoryTechnical: true,
	entity.CategoryBusiness:  true,
	entity.CategoryProduct:   true,
	entity.CategoryDesign:    true,
}

// Validate checks a method draft against the structural invariants every
// catalog entry must satisfy: non-empty title and description, a known
// difficulty and category, at least one step, and at least one success
// criterion per step and at the method level.
func Validate(m *entity.CollaborationMethod) error {
	if m.Title == "" {
		return errors.New("method title is required")
	}
	if m.Description == "" {
		return errors.New("method description is required")
	}
	if !validDifficulties[m.Difficulty] {
		return fmt.Errorf("invalid difficulty %q", m.Difficulty)
	}
	if !validCategories[m.Category] {
		return fmt.Errorf("invalid category %q", m.Category)
	}
	if len(m.Steps) == 0 {
		return errors.New("method needs at least one step")
	}
	for i, step := range m.Steps {
		if step.Title == "" {
			return fmt.Errorf("step %d: title is required", i+1)
		}
		if len(step.SuccessCriteria) == 0 {
			return fmt.Errorf("step %d: at least one success criterion is required", i+1)
		}
		for j, c := range step.SuccessCriteria {
			if c == "" {
				return fmt.Errorf("step %d: success criterion %d is empty", i+1, j+1)
			}
		}
	}
	if len(m.SuccessCriteria) == 0 {
		return errors.New("method needs at least one overall success criterion")
	}
	for i, c := range m.SuccessCriteria {
		if c == "" {
			return fmt.Errorf("overall success criterion %d is empty", i+1)
		}
	}
	return nil
}
