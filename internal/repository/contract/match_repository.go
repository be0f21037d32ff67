package contract

import (
	"context"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MatchRepository interface {
	Create(ctx context.Context, match *entity.Match) error
	Update(ctx context.Context, match *entity.Match) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Match, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Match, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateDesignation(ctx context.Context, id uuid.UUID, designation string) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// MarkReadByMatch marks every message in the match not sent by the
	// reader as read. Returns the number of rows touched.
	MarkReadByMatch(ctx context.Context, matchId, readerId uuid.UUID) (int64, error)
	// FindLastByMatch returns the newest message of the match, or nil.
	FindLastByMatch(ctx context.Context, matchId uuid.UUID) (*entity.Message, error)
}

type SectionResponseRepository interface {
	Create(ctx context.Context, response *entity.SectionResponse) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SectionResponse, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SectionResponse, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type PassRepository interface {
	Create(ctx context.Context, pass *entity.Pass) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pass, error)
	Exists(ctx context.Context, userId, passedId uuid.UUID) (bool, error)
}
