package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/memory"
	"cofoundr-be/internal/repository/specification"
	"cofoundr-be/internal/repository/unitofwork"
	"cofoundr-be/pkg/collabflow"
	"cofoundr-be/pkg/events"

	"github.com/google/uuid"
)

var ErrNoOpenSession = errors.New("no open step session")

type ICollabService interface {
	ListActive(ctx context.Context, userId uuid.UUID) (*dto.ListActiveCollabsResponse, error)
	Show(ctx context.Context, userId uuid.UUID, collabId uuid.UUID) (*dto.ActiveCollabResponse, error)
	Propose(ctx context.Context, userId uuid.UUID, req *dto.ProposeCollabRequest) (*dto.ProposeCollabResponse, error)
	Accept(ctx context.Context, userId uuid.UUID, collabId uuid.UUID) error
	Cancel(ctx context.Context, userId uuid.UUID, collabId uuid.UUID) error

	OpenStep(ctx context.Context, userId uuid.UUID, req *dto.OpenStepRequest) (*dto.StepSessionResponse, error)
	ToggleCriterion(ctx context.Context, userId uuid.UUID, req *dto.ToggleCriterionRequest) (*dto.StepSessionResponse, error)
	SaveStep(ctx context.Context, userId uuid.UUID, req *dto.SaveStepRequest) (*dto.SaveStepResponse, error)
	DiscardStep(ctx context.Context, userId uuid.UUID) error
}

type collabService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionRepo    *memory.StepSessionRepository
	eventPublisher EventPublisher
}

func NewCollabService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.StepSessionRepository,
	eventPublisher EventPublisher,
) ICollabService {
	return &collabService{
		uowFactory:     uowFactory,
		sessionRepo:    sessionRepo,
		eventPublisher: eventPublisher,
	}
}

func (s *collabService) publish(ctx context.Context, evt events.Event, what string) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", what, err)
	}
}

// viewSide maps a stored collaboration onto the perspective of the viewing
// user: the other participant becomes the partner.
func viewSide(c *entity.ActiveCollaboration, viewerId uuid.UUID) uuid.UUID {
	if c.OwnerId == viewerId {
		return c.PartnerId
	}
	return c.OwnerId
}

func collabInvolves(c *entity.ActiveCollaboration, userId uuid.UUID) bool {
	return c.OwnerId == userId || c.PartnerId == userId
}

func (s *collabService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, c *entity.ActiveCollaboration, viewerId uuid.UUID) (*dto.ActiveCollabResponse, error) {
	partnerId := viewSide(c, viewerId)

	resp := &dto.ActiveCollabResponse{
		Id:             c.Id,
		MatchId:        c.MatchId,
		PartnerId:      partnerId,
		MethodId:       c.MethodId,
		Title:          c.Title,
		Category:       string(c.Category),
		Status:         string(c.Status),
		StartDate:      c.StartDate,
		DueDate:        c.DueDate,
		Progress:       c.Progress,
		CompletedSteps: c.CompletedSteps,
		StepNotes:      c.StepNotes,
		StepCriteria:   c.StepCriteria,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if resp.CompletedSteps == nil {
		resp.CompletedSteps = []int{}
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

	method, err := resolveMethod(ctx, uow, c.MethodId)
	if err == nil {
		resp.TotalSteps = len(method.Steps)
	}

	return resp, nil
}

func (s *collabService) ListActive(ctx context.Context, userId uuid.UUID) (*dto.ListActiveCollabsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collabs, err := uow.ActiveCollabRepository().FindAll(ctx,
		specification.ParticipantUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ActiveCollabResponse, 0, len(collabs))
	for _, c := range collabs {
		resp, err := s.toResponse(ctx, uow, c, userId)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}

	return &dto.ListActiveCollabsResponse{Collabs: out}, nil
}

func (s *collabService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, collabId uuid.UUID) (*entity.ActiveCollaboration, error) {
	collab, err := uow.ActiveCollabRepository().FindOne(ctx, specification.ByID{ID: collabId})
	if err != nil {
		return nil, err
	}
	if collab == nil {
		return nil, errors.New("collaboration not found")
	}
	if !collabInvolves(collab, userId) {
		return nil, errors.New("collaboration does not belong to you")
	}
	return collab, nil
}

func (s *collabService) Show(ctx context.Context, userId uuid.UUID, collabId uuid.UUID) (*dto.ActiveCollabResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collab, err := s.findOwned(ctx, uow, userId, collabId)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, uow, collab, userId)
}

func (s *collabService) Propose(ctx context.Context, userId uuid.UUID, req *dto.ProposeCollabRequest) (*dto.ProposeCollabResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	match, err := uow.MatchRepository().FindOne(ctx, specification.ByID{ID: req.MatchId})
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, errors.New("match not found")
	}
	if !match.Involves(userId) {
		return nil, errors.New("match does not belong to you")
	}

	method, err := resolveMethod(ctx, uow, req.MethodId)
	if err != nil {
		return nil, err
	}

	// One live collaboration per match at a time.
	existing, err := uow.ActiveCollabRepository().FindAll(ctx,
		specification.FilterBy{Field: "match_id", Value: req.MatchId},
		specification.ByStatuses{Statuses: []string{
			string(entity.CollabStatusProposed),
			string(entity.CollabStatusInProgress),
		}},
	)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, errors.New("match already has an active collaboration")
	}

	partnerId := match.OtherUser(userId)
	collab := &entity.ActiveCollaboration{
		Id:             uuid.New(),
		MatchId:        match.Id,
		OwnerId:        userId,
		PartnerId:      partnerId,
		MethodId:       method.Id,
		Title:          method.Title,
		Category:       method.Category,
		Status:         entity.CollabStatusProposed,
		DueDate:        req.DueDate,
		Progress:       0,
		CompletedSteps: []int{},
		StepNotes:      map[int]string{},
		StepCriteria:   map[int][]bool{},
		CreatedAt:      time.Now(),
	}

	if err := uow.ActiveCollabRepository().Create(ctx, collab); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewCollabProposed(collab.Id, userId, partnerId, collab.Title), "COLLAB_PROPOSED")

	return &dto.ProposeCollabResponse{Id: collab.Id}, nil
}

func (s *collabService) Accept(ctx context.Context, userId uuid.UUID, collabId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collab, err := s.findOwned(ctx, uow, userId, collabId)
	if err != nil {
		return err
	}

	if collab.Status != entity.CollabStatusProposed {
		return errors.New("collaboration is not awaiting acceptance")
	}
	// The proposer cannot accept on the partner's behalf.
	if collab.OwnerId == userId {
		return errors.New("only the invited partner can accept")
	}

	collab.Status = entity.CollabStatusInProgress
	collab.StartDate = time.Now().Format("2006-01-02")
	if err := uow.ActiveCollabRepository().Update(ctx, collab); err != nil {
		return err
	}

	s.publish(ctx, events.NewCollabAccepted(collab.Id, userId, collab.OwnerId, collab.Title), "COLLAB_ACCEPTED")

	return nil
}

func (s *collabService) Cancel(ctx context.Context, userId uuid.UUID, collabId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collab, err := s.findOwned(ctx, uow, userId, collabId)
	if err != nil {
		return err
	}

	if collab.Status == entity.CollabStatusCompleted || collab.Status == entity.CollabStatusCancelled {
		return errors.New("collaboration already ended")
	}

	if err := uow.ActiveCollabRepository().UpdateStatus(ctx, collab.Id, string(entity.CollabStatusCancelled)); err != nil {
		return err
	}

	s.publish(ctx, events.NewCollabCancelled(collab.Id, userId, viewSide(collab, userId), collab.Title), "COLLAB_CANCELLED")

	return nil
}

func (s *collabService) OpenStep(ctx context.Context, userId uuid.UUID, req *dto.OpenStepRequest) (*dto.StepSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collab, err := s.findOwned(ctx, uow, userId, req.CollabId)
	if err != nil {
		return nil, err
	}

	if collab.Status != entity.CollabStatusInProgress {
		return nil, errors.New("collaboration is not in progress")
	}

	method, err := resolveMethod(ctx, uow, collab.MethodId)
	if err != nil {
		return nil, err
	}

	if req.StepIndex < 0 || req.StepIndex >= len(method.Steps) {
		return nil, errors.New("step index out of range")
	}

	session := collabflow.NewSession(
		collab.Id.String(),
		req.StepIndex,
		collab.StepNotes[req.StepIndex],
		collab.StepCriteria[req.StepIndex],
		len(method.Steps[req.StepIndex].SuccessCriteria),
	)
	s.sessionRepo.Save(userId.String(), session)

	return &dto.StepSessionResponse{
		CollabId:   collab.Id,
		StepIndex:  session.StepIndex,
		Notes:      session.DraftNotes,
		Completion: session.DraftCompletion,
	}, nil
}

func (s *collabService) ToggleCriterion(ctx context.Context, userId uuid.UUID, req *dto.ToggleCriterionRequest) (*dto.StepSessionResponse, error) {
	session, ok := s.sessionRepo.Get(userId.String())
	if !ok {
		return nil, ErrNoOpenSession
	}

	if err := session.Toggle(*req.CriterionIndex); err != nil {
		return nil, err
	}
	s.sessionRepo.Save(userId.String(), session)

	collabId, err := uuid.Parse(session.CollabId)
	if err != nil {
		return nil, err
	}

	return &dto.StepSessionResponse{
		CollabId:   collabId,
		StepIndex:  session.StepIndex,
		Notes:      session.DraftNotes,
		Completion: session.DraftCompletion,
	}, nil
}

func (s *collabService) SaveStep(ctx context.Context, userId uuid.UUID, req *dto.SaveStepRequest) (*dto.SaveStepResponse, error) {
	session, ok := s.sessionRepo.Get(userId.String())
	if !ok {
		return nil, ErrNoOpenSession
	}

	if err := session.SetNotes(req.Notes); err != nil {
		return nil, err
	}

	collabId, err := uuid.Parse(session.CollabId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	collab, err := s.findOwned(ctx, uow, userId, collabId)
	if err != nil {
		return nil, err
	}
	if collab.Status != entity.CollabStatusInProgress {
		return nil, errors.New("collaboration is not in progress")
	}

	method, err := resolveMethod(ctx, uow, collab.MethodId)
	if err != nil {
		return nil, err
	}

	stepDone := collabflow.AllDone(session.DraftCompletion)
	priorProgress := collab.Progress

	if collab.StepNotes == nil {
		collab.StepNotes = map[int]string{}
	}
	if collab.StepCriteria == nil {
		collab.StepCriteria = map[int][]bool{}
	}
	collab.StepNotes[session.StepIndex] = session.DraftNotes
	collab.StepCriteria[session.StepIndex] = session.DraftCompletion
	collab.CompletedSteps = collabflow.ReconcileCompleted(collab.CompletedSteps, session.StepIndex, stepDone)
	collab.Progress = collabflow.Progress(len(collab.CompletedSteps), len(method.Steps))

	if err := uow.ActiveCollabRepository().Update(ctx, collab); err != nil {
		return nil, err
	}

	s.sessionRepo.Delete(userId.String())

	partnerId := viewSide(collab, userId)
	s.publish(ctx, events.NewCollabStepSaved(collab.Id, userId, partnerId, session.StepIndex, collab.Progress), "COLLAB_STEP_SAVED")
	if collab.Progress == 100 && priorProgress < 100 {
		// Crossing 100 percent announces completion once but never flips
		// the status; the pair decides when the collaboration is over.
		s.publish(ctx, events.NewCollabCompleted(collab.Id, userId, partnerId, collab.Title), "COLLAB_COMPLETED")
	}

	return &dto.SaveStepResponse{
		CollabId:       collab.Id,
		StepIndex:      session.StepIndex,
		StepCompleted:  stepDone,
		CompletedSteps: collab.CompletedSteps,
		Progress:       collab.Progress,
	}, nil
}

func (s *collabService) DiscardStep(ctx context.Context, userId uuid.UUID) error {
	s.sessionRepo.Delete(userId.String())
	return nil
}
