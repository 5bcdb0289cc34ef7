package evaluation

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

var _ evaluationRepo = &evaluationRepoMock{}

type evaluationRepoMock struct {
	CreateFunc        func(ctx context.Context, eval *domain.Evaluation) (*domain.Evaluation, error)
	CreateManyFunc    func(ctx context.Context, evals []*domain.Evaluation) ([]*domain.Evaluation, error)
	ListByIdeaFunc    func(ctx context.Context, ideaID uuid.UUID) ([]*domain.Evaluation, error)
	LatestPerIdeaFunc func(ctx context.Context, ideaIDs []uuid.UUID) (map[uuid.UUID]*domain.Evaluation, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Eval *domain.Evaluation
		}
		CreateMany []struct {
			Ctx   context.Context
			Evals []*domain.Evaluation
		}
		ListByIdea []struct {
			Ctx    context.Context
			IdeaID uuid.UUID
		}
		LatestPerIdea []struct {
			Ctx     context.Context
			IdeaIDs []uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockCreateMany    sync.RWMutex
	lockListByIdea    sync.RWMutex
	lockLatestPerIdea sync.RWMutex
}

func (mock *evaluationRepoMock) Create(ctx context.Context, eval *domain.Evaluation) (*domain.Evaluation, error) {
	if mock.CreateFunc == nil {
		panic("evaluationRepoMock.CreateFunc: method is nil but evaluationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Eval *domain.Evaluation
	}{Ctx: ctx, Eval: eval}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, eval)
}

func (mock *evaluationRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Eval *domain.Evaluation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *evaluationRepoMock) CreateMany(ctx context.Context, evals []*domain.Evaluation) ([]*domain.Evaluation, error) {
	if mock.CreateManyFunc == nil {
		panic("evaluationRepoMock.CreateManyFunc: method is nil but evaluationRepo.CreateMany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Evals []*domain.Evaluation
	}{Ctx: ctx, Evals: evals}
	mock.lockCreateMany.Lock()
	mock.calls.CreateMany = append(mock.calls.CreateMany, callInfo)
	mock.lockCreateMany.Unlock()
	return mock.CreateManyFunc(ctx, evals)
}

func (mock *evaluationRepoMock) CreateManyCalls() []struct {
	Ctx   context.Context
	Evals []*domain.Evaluation
} {
	mock.lockCreateMany.RLock()
	calls := mock.calls.CreateMany
	mock.lockCreateMany.RUnlock()
	return calls
}

func (mock *evaluationRepoMock) ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]*domain.Evaluation, error) {
	if mock.ListByIdeaFunc == nil {
		panic("evaluationRepoMock.ListByIdeaFunc: method is nil but evaluationRepo.ListByIdea was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID uuid.UUID
	}{Ctx: ctx, IdeaID: ideaID}
	mock.lockListByIdea.Lock()
	mock.calls.ListByIdea = append(mock.calls.ListByIdea, callInfo)
	mock.lockListByIdea.Unlock()
	return mock.ListByIdeaFunc(ctx, ideaID)
}

func (mock *evaluationRepoMock) ListByIdeaCalls() []struct {
	Ctx    context.Context
	IdeaID uuid.UUID
} {
	mock.lockListByIdea.RLock()
	calls := mock.calls.ListByIdea
	mock.lockListByIdea.RUnlock()
	return calls
}

func (mock *evaluationRepoMock) LatestPerIdea(ctx context.Context, ideaIDs []uuid.UUID) (map[uuid.UUID]*domain.Evaluation, error) {
	if mock.LatestPerIdeaFunc == nil {
		panic("evaluationRepoMock.LatestPerIdeaFunc: method is nil but evaluationRepo.LatestPerIdea was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		IdeaIDs []uuid.UUID
	}{Ctx: ctx, IdeaIDs: ideaIDs}
	mock.lockLatestPerIdea.Lock()
	mock.calls.LatestPerIdea = append(mock.calls.LatestPerIdea, callInfo)
	mock.lockLatestPerIdea.Unlock()
	return mock.LatestPerIdeaFunc(ctx, ideaIDs)
}

func (mock *evaluationRepoMock) LatestPerIdeaCalls() []struct {
	Ctx     context.Context
	IdeaIDs []uuid.UUID
} {
	mock.lockLatestPerIdea.RLock()
	calls := mock.calls.LatestPerIdea
	mock.lockLatestPerIdea.RUnlock()
	return calls
}
