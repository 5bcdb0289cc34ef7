package idea

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

// ideaRepoMock is a mock implementation of ideaRepo.
type ideaRepoMock struct {
	// GetByIDFunc mocks the GetByID method.
	GetByIDFunc func(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)

	// CreateFunc mocks the Create method.
	CreateFunc func(ctx context.Context, idea *domain.Idea) (*domain.Idea, error)

	// ListByOwnerFunc mocks the ListByOwner method.
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Idea, int, error)

	// CountByOwnerFunc mocks the CountByOwner method.
	CountByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) (int, error)

	// DeleteSubmittedFunc mocks the DeleteSubmitted method.
	DeleteSubmittedFunc func(ctx context.Context, ownerID, ideaID uuid.UUID) error

	// calls tracks calls to the methods.
	calls struct {
		GetByID []struct {
			Ctx    context.Context
			IdeaID uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Idea *domain.Idea
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Limit   int
			Offset  int
		}
		CountByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		DeleteSubmitted []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			IdeaID  uuid.UUID
		}
	}
	lockGetByID         sync.RWMutex
	lockCreate          sync.RWMutex
	lockListByOwner     sync.RWMutex
	lockCountByOwner    sync.RWMutex
	lockDeleteSubmitted sync.RWMutex
}

// GetByID calls GetByIDFunc.
func (mock *ideaRepoMock) GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	if mock.GetByIDFunc == nil {
		panic("ideaRepoMock.GetByIDFunc: method is nil but ideaRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID uuid.UUID
	}{
		Ctx:    ctx,
		IdeaID: ideaID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ideaID)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (mock *ideaRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	IdeaID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		IdeaID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

// Create calls CreateFunc.
func (mock *ideaRepoMock) Create(ctx context.Context, idea *domain.Idea) (*domain.Idea, error) {
	if mock.CreateFunc == nil {
		panic("ideaRepoMock.CreateFunc: method is nil but ideaRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Idea *domain.Idea
	}{
		Ctx:  ctx,
		Idea: idea,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, idea)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *ideaRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Idea *domain.Idea
} {
	var calls []struct {
		Ctx  context.Context
		Idea *domain.Idea
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

// ListByOwner calls ListByOwnerFunc.
func (mock *ideaRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Idea, int, error) {
	if mock.ListByOwnerFunc == nil {
		panic("ideaRepoMock.ListByOwnerFunc: method is nil but ideaRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Limit   int
		Offset  int
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID, limit, offset)
}

// ListByOwnerCalls gets all the calls that were made to ListByOwner.
func (mock *ideaRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Limit   int
	Offset  int
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Limit   int
		Offset  int
	}
	mock.lockListByOwner.RLock()
	calls = mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

// CountByOwner calls CountByOwnerFunc.
func (mock *ideaRepoMock) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if mock.CountByOwnerFunc == nil {
		panic("ideaRepoMock.CountByOwnerFunc: method is nil but ideaRepo.CountByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockCountByOwner.Lock()
	mock.calls.CountByOwner = append(mock.calls.CountByOwner, callInfo)
	mock.lockCountByOwner.Unlock()
	return mock.CountByOwnerFunc(ctx, ownerID)
}

// CountByOwnerCalls gets all the calls that were made to CountByOwner.
func (mock *ideaRepoMock) CountByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}
	mock.lockCountByOwner.RLock()
	calls = mock.calls.CountByOwner
	mock.lockCountByOwner.RUnlock()
	return calls
}

// DeleteSubmitted calls DeleteSubmittedFunc.
func (mock *ideaRepoMock) DeleteSubmitted(ctx context.Context, ownerID, ideaID uuid.UUID) error {
	if mock.DeleteSubmittedFunc == nil {
		panic("ideaRepoMock.DeleteSubmittedFunc: method is nil but ideaRepo.DeleteSubmitted was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		IdeaID  uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		IdeaID:  ideaID,
	}
	mock.lockDeleteSubmitted.Lock()
	mock.calls.DeleteSubmitted = append(mock.calls.DeleteSubmitted, callInfo)
	mock.lockDeleteSubmitted.Unlock()
	return mock.DeleteSubmittedFunc(ctx, ownerID, ideaID)
}

// DeleteSubmittedCalls gets all the calls that were made to DeleteSubmitted.
func (mock *ideaRepoMock) DeleteSubmittedCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	IdeaID  uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		IdeaID  uuid.UUID
	}
	mock.lockDeleteSubmitted.RLock()
	calls = mock.calls.DeleteSubmitted
	mock.lockDeleteSubmitted.RUnlock()
	return calls
}
