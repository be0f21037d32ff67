package implementation

import (
	"context"
	"errors"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/mapper"
	"cofoundr-be/internal/model"
	"cofoundr-be/internal/repository/contract"
	"cofoundr-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MatchMapper
}

func NewMatchRepository(db *gorm.DB) contract.MatchRepository {
	return &MatchRepositoryImpl{
		db:     db,
		mapper: mapper.NewMatchMapper(),
	}
}

func (r *MatchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MatchRepositoryImpl) Create(ctx context.Context, match *entity.Match) error {
	m := r.mapper.ToModel(match)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*match = *r.mapper.ToEntity(m)
	return nil
}

func (r *MatchRepositoryImpl) Update(ctx context.Context, match *entity.Match) error {
	m := r.mapper.ToModel(match)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*match = *r.mapper.ToEntity(m)
	return nil
}

func (r *MatchRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Match{}).Error
}

func (r *MatchRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Match, error) {
	var m model.Match
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MatchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Match, error) {
	var models []*model.Match
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MatchRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Match{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MatchRepositoryImpl) UpdateDesignation(ctx context.Context, id uuid.UUID, designation string) error {
	return r.db.WithContext(ctx).Model(&model.Match{}).Where("id = ?", id).Update("designation", designation).Error
}
