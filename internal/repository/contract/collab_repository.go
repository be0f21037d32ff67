package contract

import (
	"context"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/specification"

	"github.com/google/uuid"
)

// CollabMethodRepository stores user-authored collaboration methods.
// Built-in methods never pass through here.
type CollabMethodRepository interface {
	Create(ctx context.Context, method *entity.CollaborationMethod) error
	Delete(ctx context.Context, id int) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollaborationMethod, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CollaborationMethod, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ActiveCollabRepository interface {
	Create(ctx context.Context, collab *entity.ActiveCollaboration) error
	Update(ctx context.Context, collab *entity.ActiveCollaboration) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActiveCollaboration, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActiveCollaboration, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
