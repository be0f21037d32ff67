package service

import (
	"context"
	"errors"

	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/repository/specification"
	"cofoundr-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMatchService interface {
	List(ctx context.Context, userId uuid.UUID, designation string) (*dto.ListMatchesResponse, error)
	UpdateDesignation(ctx context.Context, userId uuid.UUID, req *dto.UpdateDesignationRequest) (*dto.UpdateDesignationResponse, error)
}

type matchService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMatchService(uowFactory unitofwork.RepositoryFactory) IMatchService {
	return &matchService{uowFactory: uowFactory}
}

func (s *matchService) List(ctx context.Context, userId uuid.UUID, designation string) (*dto.ListMatchesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.InvolvingUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if designation != "" {
		specs = append(specs, specification.ByDesignation{Designation: designation})
	}

	matches, err := uow.MatchRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MatchResponse, 0, len(matches))
	for _, m := range matches {
		partnerId := m.OtherUser(userId)

		resp := dto.MatchResponse{
			Id:          m.Id,
			PartnerId:   partnerId,
			Designation: string(m.Designation),
			CreatedAt:   m.CreatedAt,
			UpdatedAt:   m.UpdatedAt,
		}

		partner, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: partnerId})
		if err != nil {
			return nil, err
		}
		if partner != nil {
			resp.PartnerName = partner.Name
			if len(partner.Photos) > 0 {
				resp.PartnerPhoto = partner.Photos[0]
			}
		}

		last, err := uow.MessageRepository().FindLastByMatch(ctx, m.Id)
		if err != nil {
			return nil, err
		}
		if last != nil {
			resp.LastMessage = last.Text
		}

		unread, err := uow.MessageRepository().Count(ctx,
			specification.ByMatchID{MatchID: m.Id},
			specification.BySenderID{SenderID: partnerId},
			specification.UnreadOnly{},
		)
		if err != nil {
			return nil, err
		}
		resp.UnreadCount = int(unread)

		out = append(out, resp)
	}

	return &dto.ListMatchesResponse{Matches: out}, nil
}

func (s *matchService) UpdateDesignation(ctx context.Context, userId uuid.UUID, req *dto.UpdateDesignationRequest) (*dto.UpdateDesignationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	match, err := uow.MatchRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, errors.New("match not found")
	}
	if !match.Involves(userId) {
		return nil, errors.New("match does not belong to you")
	}

	if err := uow.MatchRepository().UpdateDesignation(ctx, match.Id, req.Designation); err != nil {
		return nil, err
	}

	return &dto.UpdateDesignationResponse{
		Id:          match.Id,
		Designation: req.Designation,
	}, nil
}
