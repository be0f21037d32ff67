package implementation

import (
	"context"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/mapper"
	"cofoundr-be/internal/model"
	"cofoundr-be/internal/repository/contract"
	"cofoundr-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PassRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MatchMapper
}

func NewPassRepository(db *gorm.DB) contract.PassRepository {
	return &PassRepositoryImpl{
		db:     db,
		mapper: mapper.NewMatchMapper(),
	}
}

func (r *PassRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create is idempotent. Passing the same profile twice keeps one row.
func (r *PassRepositoryImpl) Create(ctx context.Context, pass *entity.Pass) error {
	m := r.mapper.PassToModel(pass)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "passed_id"}},
		DoNothing: true,
	}).Create(m).Error
	if err != nil {
		return err
	}
	*pass = *r.mapper.PassToEntity(m)
	return nil
}

func (r *PassRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pass, error) {
	var models []*model.Pass
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Pass, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PassToEntity(m)
	}
	return entities, nil
}

func (r *PassRepositoryImpl) Exists(ctx context.Context, userId, passedId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Pass{}).
		Where("user_id = ? AND passed_id = ?", userId, passedId).
		Count(&count).Error
	return count > 0, err
}
