package idea

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/domain"
	"github.com/ideahub/ideahub-backend/pkg/ctxutil"
)

// Create submits a new idea for the calling owner. Every idea starts in
// SUBMITTED; only the evaluation workflow moves it further.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Idea, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.ideas.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("count ideas: %w", err)
	}
	if count >= s.cfg.MaxPerOwner {
		return nil, domain.NewValidationError("ideas", fmt.Sprintf("submission limit reached (max %d ideas)", s.cfg.MaxPerOwner))
	}

	now := time.Now().UTC()
	created, err := s.ideas.Create(ctx, &domain.Idea{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Status:      domain.IdeaStatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}

	s.log.InfoContext(ctx, "idea submitted",
		slog.String("owner_id", ownerID.String()),
		slog.String("idea_id", created.ID.String()),
		slog.String("category", string(created.Category)),
	)

	return created, nil
}
