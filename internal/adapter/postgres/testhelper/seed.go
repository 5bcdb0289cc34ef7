package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ideahub/ideahub-backend/internal/domain"
)

// SeedIdea inserts an idea with the given status and returns it.
func SeedIdea(t *testing.T, pool *pgxpool.Pool, status domain.IdeaStatus) domain.Idea {
	t.Helper()

	idea := domain.Idea{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "seeded idea " + uuid.New().String()[:8],
		Description: "seeded for testing",
		Category:    domain.IdeaCategoryProcess,
		Status:      status,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO ideas (id, owner_id, title, description, category, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		idea.ID, idea.OwnerID, idea.Title, idea.Description,
		idea.Category, idea.Status, idea.CreatedAt, idea.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed idea: %v", err)
	}

	return idea
}

// SeedEvaluation inserts an evaluation for the given idea at the given time.
func SeedEvaluation(t *testing.T, pool *pgxpool.Pool, ideaID uuid.UUID, decision domain.Decision, createdAt time.Time) domain.Evaluation {
	t.Helper()

	eval := domain.Evaluation{
		ID:          uuid.New(),
		IdeaID:      ideaID,
		EvaluatorID: "seed-evaluator",
		Decision:    decision,
		Comments:    "seeded evaluation",
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO evaluations (id, idea_id, evaluator_id, decision, comments, file_ref, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		eval.ID, eval.IdeaID, eval.EvaluatorID, eval.Decision, eval.Comments, eval.FileRef, eval.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed evaluation: %v", err)
	}

	return eval
}
