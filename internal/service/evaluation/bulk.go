package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

// BulkDecide applies one decision to a set of ideas: one evaluation record
// per idea (marker comments) plus a set-based status update, all inside a
// single transaction. More than MaxBulkIdeas ids fails with
// domain.ErrLimitExceeded before any write. Returns the number of ideas
// updated, which equals the (deduplicated) id count on success.
func (s *Service) BulkDecide(ctx context.Context, input BulkDecideInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	if len(input.IdeaIDs) > MaxBulkIdeas {
		return 0, fmt.Errorf("%d ideas requested: %w", len(input.IdeaIDs), domain.ErrLimitExceeded)
	}

	status, ok := input.Decision.IdeaStatus()
	if !ok {
		return 0, domain.NewValidationError("decision", "unknown decision")
	}

	updated, err := s.bulkWrite(ctx,
		uniqueIDs(input.IdeaIDs),
		strings.TrimSpace(input.EvaluatorID),
		input.Decision,
		BulkDecideComments,
		status,
	)
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "bulk decision applied",
		slog.String("evaluator_id", strings.TrimSpace(input.EvaluatorID)),
		slog.String("decision", string(input.Decision)),
		slog.Int("updated", updated),
	)

	return updated, nil
}

// BulkAssign moves a set of ideas to UNDER_REVIEW and writes an assignment
// marker record per idea, recording the assignee as evaluator. Same bound
// and atomicity as BulkDecide.
func (s *Service) BulkAssign(ctx context.Context, input BulkAssignInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	if len(input.IdeaIDs) > MaxBulkIdeas {
		return 0, fmt.Errorf("%d ideas requested: %w", len(input.IdeaIDs), domain.ErrLimitExceeded)
	}

	assigned, err := s.bulkWrite(ctx,
		uniqueIDs(input.IdeaIDs),
		strings.TrimSpace(input.AssigneeID),
		domain.DecisionAssigned,
		BulkAssignComments,
		domain.IdeaStatusUnderReview,
	)
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "bulk assignment applied",
		slog.String("assignee_id", strings.TrimSpace(input.AssigneeID)),
		slog.Int("assigned", assigned),
	)

	return assigned, nil
}

// bulkWrite appends one evaluation per idea and applies the status to the
// whole id set. Both writes run in one transaction so the audit batch and
// the status projection cannot diverge; the batch insert runs first. A
// missing idea fails the batch via its foreign key and rolls back everything.
func (s *Service) bulkWrite(
	ctx context.Context,
	ideaIDs []uuid.UUID,
	evaluatorID string,
	decision domain.Decision,
	comments string,
	status domain.IdeaStatus,
) (int, error) {
	now := time.Now().UTC()

	evals := make([]*domain.Evaluation, len(ideaIDs))
	for i, ideaID := range ideaIDs {
		evals[i] = &domain.Evaluation{
			ID:          uuid.New(),
			IdeaID:      ideaID,
			EvaluatorID: evaluatorID,
			Decision:    decision,
			Comments:    comments,
			CreatedAt:   now,
		}
	}

	var updated int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.evaluations.CreateMany(txCtx, evals); err != nil {
			return fmt.Errorf("create evaluations: %w", err)
		}

		var updateErr error
		updated, updateErr = s.ideas.UpdateStatusMany(txCtx, ideaIDs, status)
		if updateErr != nil {
			return fmt.Errorf("update idea statuses: %w", updateErr)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}
