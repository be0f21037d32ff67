package mapper

import (
	"encoding/json"
	"time"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/model"

	"gorm.io/datatypes"
)

type CollabMapper struct{}

func NewCollabMapper() *CollabMapper {
	return &CollabMapper{}
}

func (m *CollabMapper) MethodToEntity(mm *model.CollaborationMethod) *entity.CollaborationMethod {
	if mm == nil {
		return nil
	}

	var steps []entity.CollabStep
	var criteria []string
	_ = json.Unmarshal(mm.Steps, &steps)
	_ = json.Unmarshal(mm.SuccessCriteria, &criteria)

	return &entity.CollaborationMethod{
		Id:              mm.Id,
		Title:           mm.Title,
		Description:     mm.Description,
		Duration:        mm.Duration,
		Difficulty:      entity.Difficulty(mm.Difficulty),
		Category:        entity.CollabCategory(mm.Category),
		Steps:           steps,
		Outcome:         mm.Outcome,
		SuccessCriteria: criteria,
		Custom:          true,
		AuthorId:        mm.AuthorId,
		CreatedAt:       mm.CreatedAt,
	}
}

func (m *CollabMapper) MethodToModel(e *entity.CollaborationMethod) *model.CollaborationMethod {
	if e == nil {
		return nil
	}

	steps, _ := json.Marshal(e.Steps)
	criteria, _ := json.Marshal(e.SuccessCriteria)

	return &model.CollaborationMethod{
		Id:              e.Id,
		Title:           e.Title,
		Description:     e.Description,
		Duration:        e.Duration,
		Difficulty:      string(e.Difficulty),
		Category:        string(e.Category),
		Steps:           datatypes.JSON(steps),
		Outcome:         e.Outcome,
		SuccessCriteria: datatypes.JSON(criteria),
		AuthorId:        e.AuthorId,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *CollabMapper) MethodsToEntities(methods []*model.CollaborationMethod) []*entity.CollaborationMethod {
	entities := make([]*entity.CollaborationMethod, len(methods))
	for i, mm := range methods {
		entities[i] = m.MethodToEntity(mm)
	}
	return entities
}

func (m *CollabMapper) ActiveToEntity(a *model.ActiveCollaboration) *entity.ActiveCollaboration {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	var completed []int
	stepNotes := map[int]string{}
	stepCriteria := map[int][]bool{}
	_ = json.Unmarshal(a.CompletedSteps, &completed)
	_ = json.Unmarshal(a.StepNotes, &stepNotes)
	_ = json.Unmarshal(a.StepCriteria, &stepCriteria)

	return &entity.ActiveCollaboration{
		Id:             a.Id,
		MatchId:        a.MatchId,
		OwnerId:        a.OwnerId,
		PartnerId:      a.PartnerId,
		MethodId:       a.MethodId,
		Title:          a.Title,
		Category:       entity.CollabCategory(a.Category),
		Status:         entity.CollabStatus(a.Status),
		StartDate:      a.StartDate,
		DueDate:        a.DueDate,
		Progress:       a.Progress,
		CompletedSteps: completed,
		StepNotes:      stepNotes,
		StepCriteria:   stepCriteria,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *CollabMapper) ActiveToModel(e *entity.ActiveCollaboration) *model.ActiveCollaboration {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	completed := e.CompletedSteps
	if completed == nil {
		completed = []int{}
	}
	completedJSON, _ := json.Marshal(completed)
	notesJSON, _ := json.Marshal(e.StepNotes)
	criteriaJSON, _ := json.Marshal(e.StepCriteria)

	return &model.ActiveCollaboration{
		Id:             e.Id,
		MatchId:        e.MatchId,
		OwnerId:        e.OwnerId,
		PartnerId:      e.PartnerId,
		MethodId:       e.MethodId,
		Title:          e.Title,
		Category:       string(e.Category),
		Status:         string(e.Status),
		StartDate:      e.StartDate,
		DueDate:        e.DueDate,
		Progress:       e.Progress,
		CompletedSteps: datatypes.JSON(completedJSON),
		StepNotes:      datatypes.JSON(notesJSON),
		StepCriteria:   datatypes.JSON(criteriaJSON),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *CollabMapper) ActivesToEntities(collabs []*model.ActiveCollaboration) []*entity.ActiveCollaboration {
	entities := make([]*entity.ActiveCollaboration, len(collabs))
	for i, a := range collabs {
		entities[i] = m.ActiveToEntity(a)
	}
	return entities
}
