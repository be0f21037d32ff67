package unitofwork

import (
	"context"

	"cofoundr-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	ProfileEmbeddingRepository() contract.ProfileEmbeddingRepository

	MatchRepository() contract.MatchRepository
	MessageRepository() contract.MessageRepository
	SectionResponseRepository() contract.SectionResponseRepository
	PassRepository() contract.PassRepository

	CollabMethodRepository() contract.CollabMethodRepository
	ActiveCollabRepository() contract.ActiveCollabRepository
}
