package contract

import (
	"context"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindDiscoverable returns onboarded profiles excluding the viewer,
	// everyone the viewer passed on and everyone already matched with them.
	FindDiscoverable(ctx context.Context, viewerId uuid.UUID, limit int) ([]*entity.Profile, error)
}
