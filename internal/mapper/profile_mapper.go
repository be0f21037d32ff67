package mapper

import (
	"encoding/json"
	"time"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	var skills, interestedIn, photos []string
	var prompts []entity.ProfilePrompt
	var basics entity.ProfileBasics
	_ = json.Unmarshal(p.Skills, &skills)
	_ = json.Unmarshal(p.InterestedIn, &interestedIn)
	_ = json.Unmarshal(p.Photos, &photos)
	_ = json.Unmarshal(p.Prompts, &prompts)
	_ = json.Unmarshal(p.Basics, &basics)

	return &entity.Profile{
		UserId:               p.UserId,
		Name:                 p.Name,
		Age:                  p.Age,
		Location:             p.Location,
		Title:                p.Title,
		Company:              p.Company,
		Skills:               skills,
		Experience:           p.Experience,
		Startup:              p.Startup,
		LookingFor:           p.LookingFor,
		Exploring:            p.Exploring,
		InterestedIn:         interestedIn,
		Photos:               photos,
		Prompts:              prompts,
		Basics:               basics,
		IsOnboardingComplete: p.IsOnboardingComplete,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	skills, _ := json.Marshal(p.Skills)
	interestedIn, _ := json.Marshal(p.InterestedIn)
	photos, _ := json.Marshal(p.Photos)
	prompts, _ := json.Marshal(p.Prompts)
	basics, _ := json.Marshal(p.Basics)

	return &model.Profile{
		UserId:               p.UserId,
		Name:                 p.Name,
		Age:                  p.Age,
		Location:             p.Location,
		Title:                p.Title,
		Company:              p.Company,
		Skills:               datatypes.JSON(skills),
		Experience:           p.Experience,
		Startup:              p.Startup,
		LookingFor:           p.LookingFor,
		Exploring:            p.Exploring,
		InterestedIn:         datatypes.JSON(interestedIn),
		Photos:               datatypes.JSON(photos),
		Prompts:              datatypes.JSON(prompts),
		Basics:               datatypes.JSON(basics),
		IsOnboardingComplete: p.IsOnboardingComplete,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *ProfileMapper) ToEntities(profiles []*model.Profile) []*entity.Profile {
	entities := make([]*entity.Profile, len(profiles))
	for i, p := range profiles {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProfileMapper) EmbeddingToEntity(e *model.ProfileEmbedding) *entity.ProfileEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.ProfileEmbedding{
		Id:        e.Id,
		UserId:    e.UserId,
		Document:  e.Document,
		Embedding: e.EmbeddingValue.Slice(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ProfileMapper) EmbeddingToModel(e *entity.ProfileEmbedding) *model.ProfileEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.ProfileEmbedding{
		Id:             e.Id,
		UserId:         e.UserId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.Embedding),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
