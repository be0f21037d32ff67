package service

import (
	"context"
	"testing"
	"time"

	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/contract"
	"cofoundr-be/internal/repository/specification"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	contract.UserRepository
	user   *entity.User
	tokens map[string]*entity.UserRefreshToken
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, s := range specs {
		if byId, ok := s.(specification.ByID); ok {
			if r.user != nil && r.user.Id == byId.ID {
				u := *r.user
				return &u, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	for _, s := range specs {
		if byHash, ok := s.(specification.ByTokenHash); ok {
			if t, found := r.tokens[byHash.Hash]; found {
				cp := *t
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	if t, found := r.tokens[tokenHash]; found {
		t.Revoked = true
	}
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	cp := *token
	r.tokens[token.TokenHash] = &cp
	return nil
}

func TestRefreshRotatesToken(t *testing.T) {
	user := &entity.User{
		Id:     uuid.New(),
		Email:  "a@example.com",
		Role:   entity.UserRoleUser,
		Status: entity.UserStatusActive,
	}
	rawToken := uuid.New().String()
	oldHash := hashRefreshToken(rawToken)
	users := &fakeUserRepo{
		user: user,
		tokens: map[string]*entity.UserRefreshToken{
			oldHash: {
				Id:        uuid.New(),
				UserId:    user.Id,
				TokenHash: oldHash,
				ExpiresAt: time.Now().Add(time.Hour),
			},
		},
	}
	svc := NewAuthService(fakeFactory{uow: &fakeUnitOfWork{users: users}}, nil)
	ctx := context.Background()

	res, err := svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: rawToken}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if res.AccessToken == "" {
		t.Error("empty access token")
	}
	if res.RefreshToken == "" || res.RefreshToken == rawToken {
		t.Errorf("refresh token was not rotated")
	}

	if !users.tokens[oldHash].Revoked {
		t.Error("presented token was not revoked")
	}
	if _, found := users.tokens[hashRefreshToken(res.RefreshToken)]; !found {
		t.Error("rotated token was not stored")
	}

	// a spent token cannot refresh again
	if _, err := svc.Refresh(ctx, &dto.RefreshTokenRequest{RefreshToken: rawToken}, "127.0.0.1", "test-agent"); err == nil {
		t.Error("expected error refreshing with a revoked token")
	}
}
