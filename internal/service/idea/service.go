// Package idea implements the submission-side business logic: creating,
// reading, listing, and withdrawing ideas. Status transitions past SUBMITTED
// belong to the evaluation workflow, never to this package.
package idea

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/config"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 5000
)

type ideaRepo interface {
	GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)
	Create(ctx context.Context, idea *domain.Idea) (*domain.Idea, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Idea, int, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	DeleteSubmitted(ctx context.Context, ownerID, ideaID uuid.UUID) error
}

// Service provides idea submission operations.
type Service struct {
	ideas ideaRepo
	cfg   config.IdeasConfig
	log   *slog.Logger
}

// NewService creates a new idea service.
func NewService(
	log *slog.Logger,
	ideas ideaRepo,
	cfg config.IdeasConfig,
) *Service {
	return &Service{
		ideas: ideas,
		cfg:   cfg,
		log:   log.With("service", "idea"),
	}
}
