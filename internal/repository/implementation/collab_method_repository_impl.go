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

type CollabMethodRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CollabMapper
}

func NewCollabMethodRepository(db *gorm.DB) contract.CollabMethodRepository {
	return &CollabMethodRepositoryImpl{
		db:     db,
		mapper: mapper.NewCollabMapper(),
	}
}

func (r *CollabMethodRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CollabMethodRepositoryImpl) Create(ctx context.Context, method *entity.CollaborationMethod) error {
	m := r.mapper.MethodToModel(method)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*method = *r.mapper.MethodToEntity(m)
	return nil
}

func (r *CollabMethodRepositoryImpl) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CollaborationMethod{}).Error
}

func (r *CollabMethodRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollaborationMethod, error) {
	var m model.CollaborationMethod
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MethodToEntity(&m), nil
}

func (r *CollabMethodRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollaborationMethod, error) {
	var models []*model.CollaborationMethod
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MethodsToEntities(models), nil
}

func (r *CollabMethodRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CollaborationMethod{}), specs...)
	err := query.Count(&count).Error
	return count, err
}
