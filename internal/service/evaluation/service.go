// Package evaluation implements the evaluation workflow engine: single and
// bulk review decisions, the append-only audit trail, and the reviewer queue.
//
// Status is a projection of the most recent committed decision. Concurrent
// submissions for the same idea are not serialized: each appends its own
// evaluation record and the status reflects whichever write committed last.
package evaluation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/config"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

const (
	// MaxBulkIdeas bounds bulk operations to protect the store from
	// unbounded transactions.
	MaxBulkIdeas = 100

	// BulkDecideComments is the marker text written on every bulk decision.
	BulkDecideComments = "Bulk status update"

	// BulkAssignComments is the marker text written on every bulk assignment.
	BulkAssignComments = "Assigned for review"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ideaRepo interface {
	GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)
	UpdateStatus(ctx context.Context, ideaID uuid.UUID, status domain.IdeaStatus) (*domain.Idea, error)
	UpdateStatusMany(ctx context.Context, ideaIDs []uuid.UUID, status domain.IdeaStatus) (int, error)
	ListByStatuses(ctx context.Context, statuses []domain.IdeaStatus, limit, offset int) ([]*domain.Idea, int, error)
}

type evaluationRepo interface {
	Create(ctx context.Context, eval *domain.Evaluation) (*domain.Evaluation, error)
	CreateMany(ctx context.Context, evals []*domain.Evaluation) ([]*domain.Evaluation, error)
	ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]*domain.Evaluation, error)
	LatestPerIdea(ctx context.Context, ideaIDs []uuid.UUID) (map[uuid.UUID]*domain.Evaluation, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the evaluation workflow business logic.
type Service struct {
	ideas       ideaRepo
	evaluations evaluationRepo
	tx          txManager
	cfg         config.IdeasConfig
	log         *slog.Logger
}

// NewService creates a new evaluation workflow service.
func NewService(
	log *slog.Logger,
	ideas ideaRepo,
	evaluations evaluationRepo,
	tx txManager,
	cfg config.IdeasConfig,
) *Service {
	return &Service{
		ideas:       ideas,
		evaluations: evaluations,
		tx:          tx,
		cfg:         cfg,
		log:         log.With("service", "evaluation"),
	}
}

// uniqueIDs removes duplicates while preserving first-seen order.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
