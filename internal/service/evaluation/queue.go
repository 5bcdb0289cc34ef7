package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

// QueueItem is one idea awaiting review, with its most recent evaluation
// (nil if the idea has never been evaluated) as a preview.
type QueueItem struct {
	Idea           *domain.Idea
	LastEvaluation *domain.Evaluation
}

// Queue is one page of the evaluation queue.
type Queue struct {
	Items []QueueItem
	Page  domain.Page
}

// GetQueue returns open ideas (SUBMITTED, UNDER_REVIEW, NEEDS_REVISION)
// ordered by creation time descending, paginated. Out-of-range limit and
// offset values are clamped to the configured bounds.
func (s *Service) GetQueue(ctx context.Context, input QueueInput) (*Queue, error) {
	input = input.normalize(s.cfg.QueueDefaultLimit, s.cfg.QueueMaxLimit)

	ideas, total, err := s.ideas.ListByStatuses(ctx, domain.OpenStatuses(), input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list open ideas: %w", err)
	}

	items := make([]QueueItem, len(ideas))
	for i, idea := range ideas {
		items[i] = QueueItem{Idea: idea}
	}

	if len(ideas) > 0 {
		ids := make([]uuid.UUID, len(ideas))
		for i, idea := range ideas {
			ids[i] = idea.ID
		}

		latest, err := s.evaluations.LatestPerIdea(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("latest evaluations: %w", err)
		}

		for i := range items {
			items[i].LastEvaluation = latest[items[i].Idea.ID]
		}
	}

	return &Queue{
		Items: items,
		Page:  domain.NewPage(total, input.Limit, input.Offset),
	}, nil
}
