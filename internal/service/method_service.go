package service

import (
	"context"
	"time"

	"cofoundr-be/internal/catalog"
	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/specification"
	"cofoundr-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMethodService interface {
	List(ctx context.Context) (*dto.ListMethodsResponse, error)
	Show(ctx context.Context, id int) (*dto.MethodResponse, error)
	CreateCustom(ctx context.Context, userId uuid.UUID, req *dto.CreateMethodRequest) (*dto.CreateMethodResponse, error)
}

type methodService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMethodService(uowFactory unitofwork.RepositoryFactory) IMethodService {
	return &methodService{uowFactory: uowFactory}
}

func methodToResponse(m *entity.CollaborationMethod) dto.MethodResponse {
	steps := make([]dto.CollabStep, 0, len(m.Steps))
	for _, s := range m.Steps {
		steps = append(steps, dto.CollabStep{
			Title:           s.Title,
			Description:     s.Description,
			SuccessCriteria: s.SuccessCriteria,
		})
	}
	return dto.MethodResponse{
		Id:              m.Id,
		Title:           m.Title,
		Description:     m.Description,
		Duration:        m.Duration,
		Difficulty:      string(m.Difficulty),
		Category:        string(m.Category),
		Steps:           steps,
		Outcome:         m.Outcome,
		SuccessCriteria: m.SuccessCriteria,
		Custom:          m.Custom,
	}
}

// resolveMethod looks a method up by id, built-ins first, then the custom
// methods table.
func resolveMethod(ctx context.Context, uow unitofwork.UnitOfWork, id int) (*entity.CollaborationMethod, error) {
	if m, ok := catalog.Find(id); ok {
		return m, nil
	}
	m, err := uow.CollabMethodRepository().FindOne(ctx, specification.ByMethodKey{ID: id})
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, catalog.ErrMethodNotFound
	}
	return m, nil
}

func (s *methodService) List(ctx context.Context) (*dto.ListMethodsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	methods := make([]dto.MethodResponse, 0)
	for _, m := range catalog.All() {
		methods = append(methods, methodToResponse(&m))
	}

	custom, err := uow.CollabMethodRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	for _, m := range custom {
		methods = append(methods, methodToResponse(m))
	}

	return &dto.ListMethodsResponse{Methods: methods}, nil
}

func (s *methodService) Show(ctx context.Context, id int) (*dto.MethodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	m, err := resolveMethod(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	resp := methodToResponse(m)
	return &resp, nil
}

func (s *methodService) CreateCustom(ctx context.Context, userId uuid.UUID, req *dto.CreateMethodRequest) (*dto.CreateMethodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	steps := make([]entity.CollabStep, 0, len(req.Steps))
	for _, st := range req.Steps {
		steps = append(steps, entity.CollabStep{
			Title:           st.Title,
			Description:     st.Description,
			SuccessCriteria: st.SuccessCriteria,
		})
	}

	method := &entity.CollaborationMethod{
		Title:           req.Title,
		Description:     req.Description,
		Duration:        req.Duration,
		Difficulty:      entity.Difficulty(req.Difficulty),
		Category:        entity.CollabCategory(req.Category),
		Steps:           steps,
		Outcome:         req.Outcome,
		SuccessCriteria: req.SuccessCriteria,
		Custom:          true,
		AuthorId:        &userId,
		CreatedAt:       time.Now(),
	}

	if err := catalog.Validate(method); err != nil {
		return nil, err
	}

	if err := uow.CollabMethodRepository().Create(ctx, method); err != nil {
		return nil, err
	}

	return &dto.CreateMethodResponse{Id: method.Id}, nil
}
