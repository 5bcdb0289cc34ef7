package idea

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/domain"
	"github.com/ideahub/ideahub-backend/pkg/ctxutil"
)

// Delete withdraws one of the caller's ideas. Only ideas still in SUBMITTED
// can be withdrawn; once review has started the audit trail must be kept, so
// the call fails with domain.ErrConflict.
func (s *Service) Delete(ctx context.Context, ideaID uuid.UUID) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if ideaID == uuid.Nil {
		return domain.NewValidationError("idea_id", "required")
	}

	err := s.ideas.DeleteSubmitted(ctx, ownerID, ideaID)
	if err == nil {
		s.log.InfoContext(ctx, "idea withdrawn",
			slog.String("owner_id", ownerID.String()),
			slog.String("idea_id", ideaID.String()),
		)
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete idea: %w", err)
	}

	// No row matched: distinguish a missing/foreign idea from one whose
	// review already started.
	idea, getErr := s.ideas.GetByID(ctx, ideaID)
	if getErr != nil {
		return fmt.Errorf("get idea: %w", getErr)
	}
	if idea.OwnerID != ownerID {
		return fmt.Errorf("idea %s: %w", ideaID, domain.ErrNotFound)
	}

	return fmt.Errorf("idea %s is %s: %w", ideaID, idea.Status, domain.ErrConflict)
}
