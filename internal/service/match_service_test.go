package service

import (
	"context"
	"testing"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/contract"
	"cofoundr-be/internal/repository/specification"

	"github.com/google/uuid"
)

type listingMatchRepo struct {
	contract.MatchRepository
	matches []*entity.Match
}

func (r *listingMatchRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Match, error) {
	var userId uuid.UUID
	designation := ""
	for _, s := range specs {
		switch v := s.(type) {
		case specification.InvolvingUser:
			userId = v.UserID
		case specification.ByDesignation:
			designation = v.Designation
		}
	}

	out := []*entity.Match{}
	for _, m := range r.matches {
		if !m.Involves(userId) {
			continue
		}
		if designation != "" && string(m.Designation) != designation {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type emptyMessageRepo struct {
	contract.MessageRepository
}

func (r *emptyMessageRepo) FindLastByMatch(ctx context.Context, matchId uuid.UUID) (*entity.Message, error) {
	return nil, nil
}

func (r *emptyMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func TestListFiltersByDesignation(t *testing.T) {
	me := uuid.New()
	matches := &listingMatchRepo{matches: []*entity.Match{
		{Id: uuid.New(), UserAId: me, UserBId: uuid.New(), Designation: entity.DesignationInConsideration},
		{Id: uuid.New(), UserAId: uuid.New(), UserBId: me, Designation: entity.DesignationInCollab},
		{Id: uuid.New(), UserAId: uuid.New(), UserBId: uuid.New(), Designation: entity.DesignationInCollab},
	}}
	uow := &fakeUnitOfWork{
		matches:  matches,
		messages: &emptyMessageRepo{},
		profiles: &fakeProfileRepo{profiles: map[uuid.UUID]*entity.Profile{}},
	}
	svc := NewMatchService(fakeFactory{uow: uow})
	ctx := context.Background()

	all, err := svc.List(ctx, me, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all.Matches) != 2 {
		t.Errorf("unfiltered matches = %d, want 2", len(all.Matches))
	}

	filtered, err := svc.List(ctx, me, string(entity.DesignationInCollab))
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(filtered.Matches) != 1 {
		t.Fatalf("filtered matches = %d, want 1", len(filtered.Matches))
	}
	if filtered.Matches[0].Designation != string(entity.DesignationInCollab) {
		t.Errorf("Designation = %q, want In Collab", filtered.Matches[0].Designation)
	}
}
