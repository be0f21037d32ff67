package service

import (
	"context"
	"testing"

	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/contract"
	"cofoundr-be/internal/repository/specification"
	"cofoundr-be/pkg/events"

	"github.com/google/uuid"
)

type fakeMatchRepo struct {
	contract.MatchRepository
	matches []*entity.Match
}

func (r *fakeMatchRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Match, error) {
	for _, s := range specs {
		if pair, ok := s.(specification.ByPair); ok {
			for _, m := range r.matches {
				if (m.UserAId == pair.First && m.UserBId == pair.Second) ||
					(m.UserAId == pair.Second && m.UserBId == pair.First) {
					cp := *m
					return &cp, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeMatchRepo) Create(ctx context.Context, match *entity.Match) error {
	cp := *match
	r.matches = append(r.matches, &cp)
	return nil
}

type fakeProfileRepo struct {
	contract.ProfileRepository
	profiles map[uuid.UUID]*entity.Profile
}

func (r *fakeProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	for _, s := range specs {
		if owned, ok := s.(specification.UserOwnedBy); ok {
			if p, found := r.profiles[owned.UserID]; found {
				cp := *p
				return &cp, nil
			}
		}
	}
	return nil, nil
}

type fakeSectionResponseRepo struct {
	contract.SectionResponseRepository
	responses []*entity.SectionResponse
}

func (r *fakeSectionResponseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SectionResponse, error) {
	var from, to uuid.UUID
	for _, s := range specs {
		switch v := s.(type) {
		case specification.FromUser:
			from = v.UserID
		case specification.ToUser:
			to = v.UserID
		}
	}
	for _, resp := range r.responses {
		if resp.FromUserId == from && resp.ToUserId == to {
			cp := *resp
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSectionResponseRepo) Create(ctx context.Context, response *entity.SectionResponse) error {
	cp := *response
	r.responses = append(r.responses, &cp)
	return nil
}

func TestRespondToSection(t *testing.T) {
	me := uuid.New()
	them := uuid.New()

	newFixture := func(existing ...*entity.SectionResponse) (IDiscoveryService, *fakeMatchRepo, *fakeSectionResponseRepo, *recordingPublisher) {
		matches := &fakeMatchRepo{}
		responses := &fakeSectionResponseRepo{responses: existing}
		uow := &fakeUnitOfWork{
			matches:   matches,
			responses: responses,
			profiles: &fakeProfileRepo{profiles: map[uuid.UUID]*entity.Profile{
				them: {UserId: them, Name: "Them"},
			}},
		}
		publisher := &recordingPublisher{}
		svc := NewDiscoveryService(fakeFactory{uow: uow}, publisher)
		return svc, matches, responses, publisher
	}

	t.Run("first response records interest without a match", func(t *testing.T) {
		svc, matches, responses, publisher := newFixture()

		res, err := svc.RespondToSection(context.Background(), me, &dto.SectionResponseRequest{
			ToUserId: them,
			Section:  "startup",
			Text:     "Love the idea",
		})
		if err != nil {
			t.Fatalf("RespondToSection: %v", err)
		}
		if res.Matched {
			t.Error("Matched = true, want false")
		}
		if len(matches.matches) != 0 {
			t.Errorf("matches created = %d, want 0", len(matches.matches))
		}
		if len(responses.responses) != 1 {
			t.Errorf("responses stored = %d, want 1", len(responses.responses))
		}
		if n := publisher.countByType(events.TypeMatchCreated); n != 0 {
			t.Errorf("match events = %d, want 0", n)
		}
	})

	t.Run("reciprocal response promotes the pair to a match", func(t *testing.T) {
		// their interest is already on file
		svc, matches, _, publisher := newFixture(&entity.SectionResponse{
			Id:         uuid.New(),
			FromUserId: them,
			ToUserId:   me,
			Section:    "skills",
			Text:       "Great stack",
		})

		res, err := svc.RespondToSection(context.Background(), me, &dto.SectionResponseRequest{
			ToUserId: them,
			Section:  "startup",
			Text:     "Love the idea",
		})
		if err != nil {
			t.Fatalf("RespondToSection: %v", err)
		}
		if !res.Matched {
			t.Fatal("Matched = false, want true")
		}
		if len(matches.matches) != 1 {
			t.Fatalf("matches created = %d, want 1", len(matches.matches))
		}
		m := matches.matches[0]
		if m.Designation != entity.DesignationInConsideration {
			t.Errorf("Designation = %q, want In Consideration", m.Designation)
		}
		if !m.Involves(me) || !m.Involves(them) {
			t.Error("match does not involve both users")
		}
		if n := publisher.countByType(events.TypeMatchCreated); n != 1 {
			t.Errorf("match events = %d, want 1", n)
		}

		// a second response toward an already matched pair is rejected
		if _, err := svc.RespondToSection(context.Background(), me, &dto.SectionResponseRequest{
			ToUserId: them,
			Section:  "startup",
			Text:     "Again",
		}); err == nil {
			t.Error("expected error responding to an already matched user")
		}
	})
}
