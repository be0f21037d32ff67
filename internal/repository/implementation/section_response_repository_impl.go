package implementation

import (
	"context"
	"errors"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/mapper"
	"cofoundr-be/internal/model"
	"cofoundr-be/internal/repository/contract"
	"cofoundr-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SectionResponseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MatchMapper
}

func NewSectionResponseRepository(db *gorm.DB) contract.SectionResponseRepository {
	return &SectionResponseRepositoryImpl{
		db:     db,
		mapper: mapper.NewMatchMapper(),
	}
}

func (r *SectionResponseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SectionResponseRepositoryImpl) Create(ctx context.Context, response *entity.SectionResponse) error {
	m := r.mapper.SectionResponseToModel(response)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*response = *r.mapper.SectionResponseToEntity(m)
	return nil
}

func (r *SectionResponseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SectionResponse, error) {
	var m model.SectionResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SectionResponseToEntity(&m), nil
}

func (r *SectionResponseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SectionResponse, error) {
	var models []*model.SectionResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SectionResponse, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SectionResponseToEntity(m)
	}
	return entities, nil
}

func (r *SectionResponseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SectionResponse{}), specs...)
	err := query.Count(&count).Error
	return count, err
}
