package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

// GetHistory returns an idea's full audit trail ordered by creation time
// ascending. An idea with no evaluations yields an empty slice; a missing
// idea is domain.ErrNotFound.
func (s *Service) GetHistory(ctx context.Context, ideaID uuid.UUID) ([]*domain.Evaluation, error) {
	if ideaID == uuid.Nil {
		return nil, domain.NewValidationError("idea_id", "required")
	}

	if _, err := s.ideas.GetByID(ctx, ideaID); err != nil {
		return nil, fmt.Errorf("get idea: %w", err)
	}

	evals, err := s.evaluations.ListByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}

	return evals, nil
}
