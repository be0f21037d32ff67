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

type ActiveCollabRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CollabMapper
}

func NewActiveCollabRepository(db *gorm.DB) contract.ActiveCollabRepository {
	return &ActiveCollabRepositoryImpl{
		db:     db,
		mapper: mapper.NewCollabMapper(),
	}
}

func (r *ActiveCollabRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ActiveCollabRepositoryImpl) Create(ctx context.Context, collab *entity.ActiveCollaboration) error {
	m := r.mapper.ActiveToModel(collab)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*collab = *r.mapper.ActiveToEntity(m)
	return nil
}

func (r *ActiveCollabRepositoryImpl) Update(ctx context.Context, collab *entity.ActiveCollaboration) error {
	m := r.mapper.ActiveToModel(collab)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*collab = *r.mapper.ActiveToEntity(m)
	return nil
}

func (r *ActiveCollabRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ActiveCollaboration{}).Error
}

func (r *ActiveCollabRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActiveCollaboration, error) {
	var m model.ActiveCollaboration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ActiveToEntity(&m), nil
}

func (r *ActiveCollabRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActiveCollaboration, error) {
	var models []*model.ActiveCollaboration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ActivesToEntities(models), nil
}

func (r *ActiveCollabRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ActiveCollaboration{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ActiveCollabRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.ActiveCollaboration{}).Where("id = ?", id).Update("status", status).Error
}
