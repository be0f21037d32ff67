package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/specification"
	"cofoundr-be/internal/repository/unitofwork"
	"cofoundr-be/pkg/events"

	"github.com/google/uuid"
)

type IDiscoveryService interface {
	Feed(ctx context.Context, userId uuid.UUID, limit int) (*dto.DiscoveryFeedResponse, error)
	Pass(ctx context.Context, userId uuid.UUID, req *dto.PassRequest) error
	RespondToSection(ctx context.Context, userId uuid.UUID, req *dto.SectionResponseRequest) (*dto.SectionResponseResult, error)
}

type discoveryService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher EventPublisher
}

func NewDiscoveryService(uowFactory unitofwork.RepositoryFactory, eventPublisher EventPublisher) IDiscoveryService {
	return &discoveryService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func cardFromProfile(p *entity.Profile, score *float64) dto.DiscoveryCard {
	prompts := make([]dto.ProfilePrompt, 0, len(p.Prompts))
	for _, pr := range p.Prompts {
		prompts = append(prompts, dto.ProfilePrompt{Question: pr.Question, Answer: pr.Answer})
	}
	return dto.DiscoveryCard{
		UserId:       p.UserId,
		Name:         p.Name,
		Age:          p.Age,
		Location:     p.Location,
		Title:        p.Title,
		Company:      p.Company,
		Skills:       p.Skills,
		Experience:   p.Experience,
		Startup:      p.Startup,
		LookingFor:   p.LookingFor,
		Exploring:    p.Exploring,
		InterestedIn: p.InterestedIn,
		Photos:       p.Photos,
		Prompts:      prompts,
		Basics: dto.ProfileBasics{
			Height:     p.Basics.Height,
			Education:  p.Basics.Education,
			JobTitle:   p.Basics.JobTitle,
			Religion:   p.Basics.Religion,
			LookingFor: p.Basics.LookingFor,
		},
		RelevanceScore: score,
	}
}

// excludedUserIds collects everyone the viewer should not see again: the
// viewer themselves, everyone they passed on, and everyone already matched.
func (s *discoveryService) excludedUserIds(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) ([]uuid.UUID, error) {
	exclude := []uuid.UUID{userId}

	passes, err := uow.PassRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	for _, p := range passes {
		exclude = append(exclude, p.PassedId)
	}

	matches, err := uow.MatchRepository().FindAll(ctx, specification.InvolvingUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		exclude = append(exclude, m.OtherUser(userId))
	}

	return exclude, nil
}

func (s *discoveryService) Feed(ctx context.Context, userId uuid.UUID, limit int) (*dto.DiscoveryFeedResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	viewerEmbedding, err := uow.ProfileEmbeddingRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	// Without a viewer embedding there is nothing to rank by, so fall back
	// to the plain discoverable listing.
	if viewerEmbedding == nil {
		profiles, err := uow.ProfileRepository().FindDiscoverable(ctx, userId, limit)
		if err != nil {
			return nil, err
		}
		cards := make([]dto.DiscoveryCard, 0, len(profiles))
		for _, p := range profiles {
			cards = append(cards, cardFromProfile(p, nil))
		}
		return &dto.DiscoveryFeedResponse{Cards: cards}, nil
	}

	exclude, err := s.excludedUserIds(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	scored, err := uow.ProfileEmbeddingRepository().SearchSimilar(ctx, viewerEmbedding.Embedding, limit, exclude)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.DiscoveryCard, 0, len(scored))
	for _, sp := range scored {
		profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: sp.Embedding.UserId})
		if err != nil {
			return nil, err
		}
		if profile == nil || !profile.IsOnboardingComplete {
			continue
		}
		score := sp.Similarity
		cards = append(cards, cardFromProfile(profile, &score))
	}

	return &dto.DiscoveryFeedResponse{Cards: cards}, nil
}

func (s *discoveryService) Pass(ctx context.Context, userId uuid.UUID, req *dto.PassRequest) error {
	if req.UserId == userId {
		return errors.New("cannot pass on yourself")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	return uow.PassRepository().Create(ctx, &entity.Pass{
		Id:        uuid.New(),
		UserId:    userId,
		PassedId:  req.UserId,
		CreatedAt: time.Now(),
	})
}

func (s *discoveryService) RespondToSection(ctx context.Context, userId uuid.UUID, req *dto.SectionResponseRequest) (*dto.SectionResponseResult, error) {
	if req.ToUserId == userId {
		return nil, errors.New("cannot respond to your own profile")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	target, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: req.ToUserId})
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.New("profile not found")
	}

	existingMatch, err := uow.MatchRepository().FindOne(ctx, specification.ByPair{First: userId, Second: req.ToUserId})
	if err != nil {
		return nil, err
	}
	if existingMatch != nil {
		return nil, errors.New("already matched with this user")
	}

	response := &entity.SectionResponse{
		Id:         uuid.New(),
		FromUserId: userId,
		ToUserId:   req.ToUserId,
		Section:    req.Section,
		Text:       req.Text,
		CreatedAt:  time.Now(),
	}

	// A response from the other direction already on file means mutual
	// interest, which promotes the pair to a match.
	reciprocal, err := uow.SectionResponseRepository().FindOne(ctx,
		specification.FromUser{UserID: req.ToUserId},
		specification.ToUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	if reciprocal == nil {
		if err := uow.SectionResponseRepository().Create(ctx, response); err != nil {
			return nil, err
		}
		return &dto.SectionResponseResult{Id: response.Id, Matched: false}, nil
	}

	match := &entity.Match{
		Id:          uuid.New(),
		UserAId:     userId,
		UserBId:     req.ToUserId,
		Designation: entity.DesignationInConsideration,
		CreatedAt:   time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SectionResponseRepository().Create(ctx, response); err != nil {
		return nil, err
	}
	if err := uow.MatchRepository().Create(ctx, match); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewMatchCreated(match.Id, userId, req.ToUserId)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish MATCH_CREATED event: %v\n", err)
		}
	}

	return &dto.SectionResponseResult{Id: response.Id, Matched: true, MatchId: match.Id}, nil
}
