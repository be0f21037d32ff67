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

type IChatService interface {
	Send(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	List(ctx context.Context, userId uuid.UUID, matchId uuid.UUID, limit, offset int) (*dto.ListMessagesResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, matchId uuid.UUID) (*dto.MarkReadResponse, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher EventPublisher
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, eventPublisher EventPublisher) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// messagePreview shortens a message body for notification payloads.
func messagePreview(text string) string {
	const max = 80
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

func (s *chatService) requireMembership(ctx context.Context, uow unitofwork.UnitOfWork, userId, matchId uuid.UUID) (*entity.Match, error) {
	match, err := uow.MatchRepository().FindOne(ctx, specification.ByID{ID: matchId})
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, errors.New("match not found")
	}
	if !match.Involves(userId) {
		return nil, errors.New("match does not belong to you")
	}
	return match, nil
}

func (s *chatService) Send(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	match, err := s.requireMembership(ctx, uow, userId, req.MatchId)
	if err != nil {
		return nil, err
	}
	if match.Designation == entity.DesignationClosed {
		return nil, errors.New("match is closed")
	}

	msg := &entity.Message{
		Id:        uuid.New(),
		MatchId:   match.Id,
		SenderId:  userId,
		Text:      req.Text,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	if err := uow.MessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewMessageSent(match.Id, userId, match.OtherUser(userId), messagePreview(req.Text))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish MESSAGE_SENT event: %v\n", err)
		}
	}

	return &dto.MessageResponse{
		Id:        msg.Id,
		MatchId:   msg.MatchId,
		SenderId:  msg.SenderId,
		Text:      msg.Text,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}, nil
}

func (s *chatService) List(ctx context.Context, userId uuid.UUID, matchId uuid.UUID, limit, offset int) (*dto.ListMessagesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.requireMembership(ctx, uow, userId, matchId); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByMatchID{MatchID: matchId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.MessageResponse{
			Id:        m.Id,
			MatchId:   m.MatchId,
			SenderId:  m.SenderId,
			Text:      m.Text,
			IsRead:    m.IsRead,
			CreatedAt: m.CreatedAt,
		})
	}

	return &dto.ListMessagesResponse{Messages: out}, nil
}

func (s *chatService) MarkRead(ctx context.Context, userId uuid.UUID, matchId uuid.UUID) (*dto.MarkReadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.requireMembership(ctx, uow, userId, matchId); err != nil {
		return nil, err
	}

	updated, err := uow.MessageRepository().MarkReadByMatch(ctx, matchId, userId)
	if err != nil {
		return nil, err
	}

	return &dto.MarkReadResponse{MatchId: matchId, Updated: int(updated)}, nil
}
