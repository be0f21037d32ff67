package service

import (
	"context"
	"testing"

	"cofoundr-be/internal/catalog"
	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/contract"
	"cofoundr-be/internal/repository/memory"
	"cofoundr-be/internal/repository/specification"
	"cofoundr-be/internal/repository/unitofwork"
	"cofoundr-be/pkg/events"

	"github.com/google/uuid"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func (p *recordingPublisher) countByType(eventType string) int {
	n := 0
	for _, e := range p.published {
		if e.EventType() == eventType {
			n++
		}
	}
	return n
}

// fakeUnitOfWork serves in-memory repositories. Unused accessors fall
// through to the embedded nil interface and panic if a test reaches them.
type fakeUnitOfWork struct {
	unitofwork.UnitOfWork
	users     contract.UserRepository
	profiles  contract.ProfileRepository
	matches   contract.MatchRepository
	messages  contract.MessageRepository
	responses contract.SectionResponseRepository
	methods   contract.CollabMethodRepository
	collabs   contract.ActiveCollabRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository       { return u.users }
func (u *fakeUnitOfWork) ProfileRepository() contract.ProfileRepository { return u.profiles }
func (u *fakeUnitOfWork) MatchRepository() contract.MatchRepository     { return u.matches }
func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository { return u.messages }
func (u *fakeUnitOfWork) SectionResponseRepository() contract.SectionResponseRepository {
	return u.responses
}
func (u *fakeUnitOfWork) CollabMethodRepository() contract.CollabMethodRepository {
	return u.methods
}
func (u *fakeUnitOfWork) ActiveCollabRepository() contract.ActiveCollabRepository {
	return u.collabs
}

type fakeFactory struct {
	uow unitofwork.UnitOfWork
}

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeCollabRepo struct {
	contract.ActiveCollabRepository
	collab *entity.ActiveCollaboration
}

func (r *fakeCollabRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActiveCollaboration, error) {
	if r.collab == nil {
		return nil, nil
	}
	c := *r.collab
	return &c, nil
}

func (r *fakeCollabRepo) Update(ctx context.Context, c *entity.ActiveCollaboration) error {
	cp := *c
	r.collab = &cp
	return nil
}

type fakeMethodRepo struct {
	contract.CollabMethodRepository
	stored map[int]*entity.CollaborationMethod
}

func (r *fakeMethodRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CollaborationMethod, error) {
	for _, s := range specs {
		if key, ok := s.(specification.ByMethodKey); ok {
			if m, found := r.stored[key.ID]; found {
				cp := *m
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func newCollabFixture(collab *entity.ActiveCollaboration, custom map[int]*entity.CollaborationMethod) (ICollabService, *fakeCollabRepo, *memory.StepSessionRepository, *recordingPublisher) {
	collabRepo := &fakeCollabRepo{collab: collab}
	uow := &fakeUnitOfWork{
		collabs: collabRepo,
		methods: &fakeMethodRepo{stored: custom},
	}
	sessions := memory.NewStepSessionRepository()
	publisher := &recordingPublisher{}
	svc := NewCollabService(fakeFactory{uow: uow}, sessions, publisher)
	return svc, collabRepo, sessions, publisher
}

func inProgressCollab(ownerId, partnerId uuid.UUID, methodId int) *entity.ActiveCollaboration {
	return &entity.ActiveCollaboration{
		Id:             uuid.New(),
		MatchId:        uuid.New(),
		OwnerId:        ownerId,
		PartnerId:      partnerId,
		MethodId:       methodId,
		Title:          "t",
		Status:         entity.CollabStatusInProgress,
		CompletedSteps: []int{},
		StepNotes:      map[int]string{},
		StepCriteria:   map[int][]bool{},
	}
}

func TestSaveStepCompletesStepAndRecomputesProgress(t *testing.T) {
	owner := uuid.New()
	svc, repo, _, _ := newCollabFixture(inProgressCollab(owner, uuid.New(), 1), nil)
	ctx := context.Background()

	open, err := svc.OpenStep(ctx, owner, &dto.OpenStepRequest{CollabId: repo.collab.Id, StepIndex: 0})
	if err != nil {
		t.Fatalf("OpenStep: %v", err)
	}

	for i := range open.Completion {
		idx := i
		if _, err := svc.ToggleCriterion(ctx, owner, &dto.ToggleCriterionRequest{CriterionIndex: &idx}); err != nil {
			t.Fatalf("ToggleCriterion(%d): %v", i, err)
		}
	}

	res, err := svc.SaveStep(ctx, owner, &dto.SaveStepRequest{Notes: "went well"})
	if err != nil {
		t.Fatalf("SaveStep: %v", err)
	}

	if !res.StepCompleted {
		t.Error("StepCompleted = false, want true")
	}
	if len(res.CompletedSteps) != 1 || res.CompletedSteps[0] != 0 {
		t.Errorf("CompletedSteps = %v, want [0]", res.CompletedSteps)
	}
	// method 1 has five steps
	if res.Progress != 20 {
		t.Errorf("Progress = %d, want 20", res.Progress)
	}

	stored := repo.collab
	if stored.StepNotes[0] != "went well" {
		t.Errorf("stored notes = %q", stored.StepNotes[0])
	}
	for _, step := range stored.CompletedSteps {
		for i, done := range stored.StepCriteria[step] {
			if !done {
				t.Errorf("step %d is in CompletedSteps but criterion %d is false", step, i)
			}
		}
	}

	// the session is spent after a save
	if _, err := svc.SaveStep(ctx, owner, &dto.SaveStepRequest{}); err != ErrNoOpenSession {
		t.Errorf("second SaveStep = %v, want ErrNoOpenSession", err)
	}
}

func TestSaveStepUncheckingCriterionRemovesStep(t *testing.T) {
	owner := uuid.New()
	collab := inProgressCollab(owner, uuid.New(), 1)
	method, _ := catalog.Find(1)
	criteriaCount := len(method.Steps[1].SuccessCriteria)
	allTrue := make([]bool, criteriaCount)
	for i := range allTrue {
		allTrue[i] = true
	}
	collab.StepCriteria[1] = allTrue
	collab.CompletedSteps = []int{1}
	collab.Progress = 20

	svc, repo, _, _ := newCollabFixture(collab, nil)
	ctx := context.Background()

	if _, err := svc.OpenStep(ctx, owner, &dto.OpenStepRequest{CollabId: collab.Id, StepIndex: 1}); err != nil {
		t.Fatalf("OpenStep: %v", err)
	}
	idx := 0
	if _, err := svc.ToggleCriterion(ctx, owner, &dto.ToggleCriterionRequest{CriterionIndex: &idx}); err != nil {
		t.Fatalf("ToggleCriterion: %v", err)
	}

	res, err := svc.SaveStep(ctx, owner, &dto.SaveStepRequest{})
	if err != nil {
		t.Fatalf("SaveStep: %v", err)
	}

	if res.StepCompleted {
		t.Error("StepCompleted = true, want false")
	}
	if len(res.CompletedSteps) != 0 {
		t.Errorf("CompletedSteps = %v, want empty", res.CompletedSteps)
	}
	if res.Progress != 0 {
		t.Errorf("Progress = %d, want 0", res.Progress)
	}
	if len(repo.collab.CompletedSteps) != 0 {
		t.Errorf("stored CompletedSteps = %v, want empty", repo.collab.CompletedSteps)
	}
}

func TestSaveStepPublishesCompletionOnlyOnTransition(t *testing.T) {
	owner := uuid.New()
	customId := catalog.CustomMethodIdStart
	oneStep := &entity.CollaborationMethod{
		Id:          customId,
		Title:       "Single Step",
		Description: "d",
		Difficulty:  entity.DifficultyEasy,
		Category:    entity.CategoryTechnical,
		Steps: []entity.CollabStep{
			{Title: "only", Description: "d", SuccessCriteria: []string{"done"}},
		},
		SuccessCriteria: []string{"done"},
		Custom:          true,
	}
	collab := inProgressCollab(owner, uuid.New(), customId)

	svc, _, _, publisher := newCollabFixture(collab, map[int]*entity.CollaborationMethod{customId: oneStep})
	ctx := context.Background()

	save := func() {
		t.Helper()
		if _, err := svc.OpenStep(ctx, owner, &dto.OpenStepRequest{CollabId: collab.Id, StepIndex: 0}); err != nil {
			t.Fatalf("OpenStep: %v", err)
		}
		if _, err := svc.SaveStep(ctx, owner, &dto.SaveStepRequest{}); err != nil {
			t.Fatalf("SaveStep: %v", err)
		}
	}

	// first save completes nothing yet, the criterion is unchecked
	save()
	if n := publisher.countByType(events.TypeCollabCompleted); n != 0 {
		t.Fatalf("completion events after incomplete save = %d, want 0", n)
	}

	// checking the only criterion crosses progress to 100
	if _, err := svc.OpenStep(ctx, owner, &dto.OpenStepRequest{CollabId: collab.Id, StepIndex: 0}); err != nil {
		t.Fatalf("OpenStep: %v", err)
	}
	idx := 0
	if _, err := svc.ToggleCriterion(ctx, owner, &dto.ToggleCriterionRequest{CriterionIndex: &idx}); err != nil {
		t.Fatalf("ToggleCriterion: %v", err)
	}
	if _, err := svc.SaveStep(ctx, owner, &dto.SaveStepRequest{}); err != nil {
		t.Fatalf("SaveStep: %v", err)
	}
	if n := publisher.countByType(events.TypeCollabCompleted); n != 1 {
		t.Fatalf("completion events after crossing 100 = %d, want 1", n)
	}

	// re-saving notes on a finished collaboration must not re-announce
	save()
	if n := publisher.countByType(events.TypeCollabCompleted); n != 1 {
		t.Errorf("completion events after re-save at 100 = %d, want 1", n)
	}
	if n := publisher.countByType(events.TypeCollabStepSaved); n != 3 {
		t.Errorf("step-saved events = %d, want 3", n)
	}
}

func TestResolveMethodKeepsRangesDistinct(t *testing.T) {
	customId := catalog.CustomMethodIdStart
	custom := &entity.CollaborationMethod{
		Id:     customId,
		Title:  "Custom Sprint",
		Custom: true,
	}
	uow := &fakeUnitOfWork{
		methods: &fakeMethodRepo{stored: map[int]*entity.CollaborationMethod{customId: custom}},
	}
	ctx := context.Background()

	builtin, err := resolveMethod(ctx, uow, 1)
	if err != nil {
		t.Fatalf("resolveMethod(1): %v", err)
	}
	if builtin.Title != "Code Review Challenge" || builtin.Custom {
		t.Errorf("resolveMethod(1) = %q (custom=%v), want the built-in", builtin.Title, builtin.Custom)
	}

	got, err := resolveMethod(ctx, uow, customId)
	if err != nil {
		t.Fatalf("resolveMethod(%d): %v", customId, err)
	}
	if got.Title != "Custom Sprint" || !got.Custom {
		t.Errorf("resolveMethod(%d) = %q (custom=%v), want the stored custom method", customId, got.Title, got.Custom)
	}

	if _, err := resolveMethod(ctx, uow, 7); err != catalog.ErrMethodNotFound {
		t.Errorf("resolveMethod(7) = %v, want ErrMethodNotFound", err)
	}
}
