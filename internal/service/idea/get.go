package idea

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/domain"
	"github.com/ideahub/ideahub-backend/pkg/ctxutil"
)

// Get returns one of the caller's ideas. Another owner's idea is
// domain.ErrNotFound rather than a permission error, so ids are not probeable.
func (s *Service) Get(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if ideaID == uuid.Nil {
		return nil, domain.NewValidationError("idea_id", "required")
	}

	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("get idea: %w", err)
	}

	if idea.OwnerID != ownerID {
		return nil, fmt.Errorf("idea %s: %w", ideaID, domain.ErrNotFound)
	}

	return idea, nil
}
