package contract

import (
	"context"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredProfile wraps a profile embedding with its similarity score
type ScoredProfile struct {
	Embedding  *entity.ProfileEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type ProfileEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *entity.ProfileEmbedding) error
	DeleteByUserId(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProfileEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilar returns the user ids of profiles closest to the given
	// vector, best first, excluding the ids listed in excludeIds.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, excludeIds []uuid.UUID) ([]*ScoredProfile, error)
}
