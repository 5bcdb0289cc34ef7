package evaluation

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	GetByIDFunc          func(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)
	UpdateStatusFunc     func(ctx context.Context, ideaID uuid.UUID, status domain.IdeaStatus) (*domain.Idea, error)
	UpdateStatusManyFunc func(ctx context.Context, ideaIDs []uuid.UUID, status domain.IdeaStatus) (int, error)
	ListByStatusesFunc   func(ctx context.Context, statuses []domain.IdeaStatus, limit, offset int) ([]*domain.Idea, int, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			IdeaID uuid.UUID
		}
		UpdateStatus []struct {
			Ctx    context.Context
			IdeaID uuid.UUID
			Status domain.IdeaStatus
		}
		UpdateStatusMany []struct {
			Ctx     context.Context
			IdeaIDs []uuid.UUID
			Status  domain.IdeaStatus
		}
		ListByStatuses []struct {
			Ctx      context.Context
			Statuses []domain.IdeaStatus
			Limit    int
			Offset   int
		}
	}
	lockGetByID          sync.RWMutex
	lockUpdateStatus     sync.RWMutex
	lockUpdateStatusMany sync.RWMutex
	lockListByStatuses   sync.RWMutex
}

func (mock *ideaRepoMock) GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	if mock.GetByIDFunc == nil {
		panic("ideaRepoMock.GetByIDFunc: method is nil but ideaRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID uuid.UUID
	}{Ctx: ctx, IdeaID: ideaID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ideaID)
}

func (mock *ideaRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	IdeaID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *ideaRepoMock) UpdateStatus(ctx context.Context, ideaID uuid.UUID, status domain.IdeaStatus) (*domain.Idea, error) {
	if mock.UpdateStatusFunc == nil {
		panic("ideaRepoMock.UpdateStatusFunc: method is nil but ideaRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID uuid.UUID
		Status domain.IdeaStatus
	}{Ctx: ctx, IdeaID: ideaID, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, ideaID, status)
}

func (mock *ideaRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	IdeaID uuid.UUID
	Status domain.IdeaStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *ideaRepoMock) UpdateStatusMany(ctx context.Context, ideaIDs []uuid.UUID, status domain.IdeaStatus) (int, error) {
	if mock.UpdateStatusManyFunc == nil {
		panic("ideaRepoMock.UpdateStatusManyFunc: method is nil but ideaRepo.UpdateStatusMany was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		IdeaIDs []uuid.UUID
		Status  domain.IdeaStatus
	}{Ctx: ctx, IdeaIDs: ideaIDs, Status: status}
	mock.lockUpdateStatusMany.Lock()
	mock.calls.UpdateStatusMany = append(mock.calls.UpdateStatusMany, callInfo)
	mock.lockUpdateStatusMany.Unlock()
	return mock.UpdateStatusManyFunc(ctx, ideaIDs, status)
}

func (mock *ideaRepoMock) UpdateStatusManyCalls() []struct {
	Ctx     context.Context
	IdeaIDs []uuid.UUID
	Status  domain.IdeaStatus
} {
	mock.lockUpdateStatusMany.RLock()
	calls := mock.calls.UpdateStatusMany
	mock.lockUpdateStatusMany.RUnlock()
	return calls
}

func (mock *ideaRepoMock) ListByStatuses(ctx context.Context, statuses []domain.IdeaStatus, limit, offset int) ([]*domain.Idea, int, error) {
	if mock.ListByStatusesFunc == nil {
		panic("ideaRepoMock.ListByStatusesFunc: method is nil but ideaRepo.ListByStatuses was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Statuses []domain.IdeaStatus
		Limit    int
		Offset   int
	}{Ctx: ctx, Statuses: statuses, Limit: limit, Offset: offset}
	mock.lockListByStatuses.Lock()
	mock.calls.ListByStatuses = append(mock.calls.ListByStatuses, callInfo)
	mock.lockListByStatuses.Unlock()
	return mock.ListByStatusesFunc(ctx, statuses, limit, offset)
}

func (mock *ideaRepoMock) ListByStatusesCalls() []struct {
	Ctx      context.Context
	Statuses []domain.IdeaStatus
	Limit    int
	Offset   int
} {
	mock.lockListByStatuses.RLock()
	calls := mock.calls.ListByStatuses
	mock.lockListByStatuses.RUnlock()
	return calls
}
