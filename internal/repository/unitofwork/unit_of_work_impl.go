package unitofwork

import (
	"context"
	"fmt"

	"cofoundr-be/internal/repository/contract"
	"cofoundr-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProfileRepository() contract.ProfileRepository {
	return implementation.NewProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProfileEmbeddingRepository() contract.ProfileEmbeddingRepository {
	return implementation.NewProfileEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MatchRepository() contract.MatchRepository {
	return implementation.NewMatchRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MessageRepository() contract.MessageRepository {
	return implementation.NewMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SectionResponseRepository() contract.SectionResponseRepository {
	return implementation.NewSectionResponseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PassRepository() contract.PassRepository {
	return implementation.NewPassRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CollabMethodRepository() contract.CollabMethodRepository {
	return implementation.NewCollabMethodRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ActiveCollabRepository() contract.ActiveCollabRepository {
	return implementation.NewActiveCollabRepository(u.getDB())
}
