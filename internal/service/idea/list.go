package idea

import (
	"context"
	"fmt"

	"github.com/ideahub/ideahub-backend/internal/domain"
	"github.com/ideahub/ideahub-backend/pkg/ctxutil"
)

// IdeaPage is one page of an owner's ideas.
type IdeaPage struct {
	Ideas []*domain.Idea
	Page  domain.Page
}

// List returns the caller's ideas ordered by creation time descending.
func (s *Service) List(ctx context.Context, input ListInput) (*IdeaPage, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.QueueDefaultLimit
	}
	if limit > s.cfg.QueueMaxLimit {
		limit = s.cfg.QueueMaxLimit
	}

	ideas, total, err := s.ideas.ListByOwner(ctx, ownerID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	return &IdeaPage{
		Ideas: ideas,
		Page:  domain.NewPage(total, limit, input.Offset),
	}, nil
}
