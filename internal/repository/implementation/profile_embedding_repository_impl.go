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
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileEmbeddingRepository(db *gorm.DB) contract.ProfileEmbeddingRepository {
	return &ProfileEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert replaces the single embedding row a user owns. Profiles re-embed
// on every edit, so conflict on user_id overwrites document and vector.
func (r *ProfileEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.ProfileEmbedding) error {
	m := r.mapper.EmbeddingToModel(embedding)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "embedding_value", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.EmbeddingToEntity(m)
	return nil
}

func (r *ProfileEmbeddingRepositoryImpl) DeleteByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.ProfileEmbedding{}).Error
}

func (r *ProfileEmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProfileEmbedding, error) {
	var m model.ProfileEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.EmbeddingToEntity(&m), nil
}

func (r *ProfileEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ProfileEmbedding{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *ProfileEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, excludeIds []uuid.UUID) ([]*contract.ScoredProfile, error) {
	if limit <= 0 {
		limit = 20
	}

	type result struct {
		model.ProfileEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table("profile_embeddings").
		Select("profile_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("profile_embeddings.deleted_at IS NULL")
	if len(excludeIds) > 0 {
		query = query.Where("user_id NOT IN ?", excludeIds)
	}

	err := query.
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredProfile, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredProfile{
			Embedding:  r.mapper.EmbeddingToEntity(&res.ProfileEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
