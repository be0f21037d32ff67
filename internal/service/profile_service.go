package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/specification"
	"cofoundr-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProfileService interface {
	Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error)
	Show(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	CompleteOnboarding(ctx context.Context, userId uuid.UUID) (*dto.CompleteOnboardingResponse, error)
	AddPhoto(ctx context.Context, userId uuid.UUID, req *dto.AddPhotoRequest) (*dto.ProfileResponse, error)
	RemovePhoto(ctx context.Context, userId uuid.UUID, req *dto.RemovePhotoRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IProfileService {
	return &profileService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func profileToResponse(p *entity.Profile) *dto.ProfileResponse {
	prompts := make([]dto.ProfilePrompt, 0, len(p.Prompts))
	for _, pr := range p.Prompts {
		prompts = append(prompts, dto.ProfilePrompt{Question: pr.Question, Answer: pr.Answer})
	}

	return &dto.ProfileResponse{
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
		IsOnboardingComplete: p.IsOnboardingComplete,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (s *profileService) Upsert(ctx context.Context, userId uuid.UUID, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompts := make([]entity.ProfilePrompt, 0, len(req.Prompts))
	for _, pr := range req.Prompts {
		prompts = append(prompts, entity.ProfilePrompt{Question: pr.Question, Answer: pr.Answer})
	}

	existing, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entity.Profile{
		UserId:       userId,
		Name:         req.Name,
		Age:          req.Age,
		Location:     req.Location,
		Title:        req.Title,
		Company:      req.Company,
		Skills:       req.Skills,
		Experience:   req.Experience,
		Startup:      req.Startup,
		LookingFor:   req.LookingFor,
		Exploring:    req.Exploring,
		InterestedIn: req.InterestedIn,
		Photos:       req.Photos,
		Prompts:      prompts,
		Basics: entity.ProfileBasics{
			Height:     req.Basics.Height,
			Education:  req.Basics.Education,
			JobTitle:   req.Basics.JobTitle,
			Religion:   req.Basics.Religion,
			LookingFor: req.Basics.LookingFor,
		},
		CreatedAt: now,
		UpdatedAt: &now,
	}

	if existing != nil {
		profile.IsOnboardingComplete = existing.IsOnboardingComplete
		profile.CreatedAt = existing.CreatedAt
		if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		profile.UpdatedAt = nil
		if err := uow.ProfileRepository().Create(ctx, profile); err != nil {
			return nil, err
		}
	}

	// Re-embed asynchronously so profile writes stay fast.
	payload, err := json.Marshal(dto.PublishEmbedProfileMessage{UserId: userId})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return nil, err
	}

	return profileToResponse(profile), nil
}

func (s *profileService) Show(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	return profileToResponse(profile), nil
}

func (s *profileService) AddPhoto(ctx context.Context, userId uuid.UUID, req *dto.AddPhotoRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	for _, p := range profile.Photos {
		if p == req.URL {
			return profileToResponse(profile), nil
		}
	}
	if len(profile.Photos) >= 6 {
		return nil, errors.New("photo limit reached")
	}

	profile.Photos = append(profile.Photos, req.URL)
	now := time.Now()
	profile.UpdatedAt = &now
	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	return profileToResponse(profile), nil
}

func (s *profileService) RemovePhoto(ctx context.Context, userId uuid.UUID, req *dto.RemovePhotoRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	kept := make([]string, 0, len(profile.Photos))
	for _, p := range profile.Photos {
		if p != req.URL {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(profile.Photos) {
		return profileToResponse(profile), nil
	}

	profile.Photos = kept
	now := time.Now()
	profile.UpdatedAt = &now
	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	return profileToResponse(profile), nil
}

func (s *profileService) CompleteOnboarding(ctx context.Context, userId uuid.UUID) (*dto.CompleteOnboardingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found. complete your profile first")
	}

	if !profile.IsOnboardingComplete {
		profile.IsOnboardingComplete = true
		if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
			return nil, err
		}
	}

	return &dto.CompleteOnboardingResponse{
		UserId:               userId,
		IsOnboardingComplete: true,
	}, nil
}
