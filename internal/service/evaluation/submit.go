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

// SubmitEvaluation records one evaluator decision for an idea. It appends an
// evaluation record and moves the idea to the status implied by the decision,
// as a single atomic unit: the audit write happens first, the status
// projection second, and a failure of either rolls back both.
//
// The idea must exist before any write; a missing id is domain.ErrNotFound
// with zero side effects. Concurrent submissions for the same idea all
// succeed — last committed status wins, the audit log keeps every record.
func (s *Service) SubmitEvaluation(ctx context.Context, input SubmitInput) (*domain.Evaluation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	idea, err := s.ideas.GetByID(ctx, input.IdeaID)
	if err != nil {
		return nil, fmt.Errorf("get idea: %w", err)
	}

	status, ok := input.Decision.IdeaStatus()
	if !ok {
		return nil, domain.NewValidationError("decision", "unknown decision")
	}

	var created *domain.Evaluation

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Audit first, projection second.
		var createErr error
		created, createErr = s.evaluations.Create(txCtx, &domain.Evaluation{
			ID:          uuid.New(),
			IdeaID:      idea.ID,
			EvaluatorID: strings.TrimSpace(input.EvaluatorID),
			Decision:    input.Decision,
			Comments:    strings.TrimSpace(input.Comments),
			FileRef:     input.FileRef,
			CreatedAt:   time.Now().UTC(),
		})
		if createErr != nil {
			return fmt.Errorf("create evaluation: %w", createErr)
		}

		if _, updateErr := s.ideas.UpdateStatus(txCtx, idea.ID, status); updateErr != nil {
			return fmt.Errorf("update idea status: %w", updateErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "evaluation submitted",
		slog.String("idea_id", idea.ID.String()),
		slog.String("evaluator_id", created.EvaluatorID),
		slog.String("decision", string(created.Decision)),
		slog.String("old_status", string(idea.Status)),
		slog.String("new_status", string(status)),
	)

	return created, nil
}
