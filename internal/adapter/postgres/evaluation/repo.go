// Package evaluation implements the Evaluation repository using PostgreSQL.
// The evaluations table is an append-only audit log: this package exposes no
// update or delete operations, and the store itself rejects them via trigger.
package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ideahub/ideahub-backend/internal/adapter/postgres"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

const evaluationColumns = "id, idea_id, evaluator_id, decision, comments, file_ref, created_at"

// Repo provides evaluation log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new evaluation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createEvaluationSQL = `
	INSERT INTO evaluations (id, idea_id, evaluator_id, decision, comments, file_ref, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + evaluationColumns

// Create appends one evaluation record and returns the persisted row.
// A missing idea surfaces as domain.ErrNotFound via the foreign key.
func (r *Repo) Create(ctx context.Context, eval *domain.Evaluation) (*domain.Evaluation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createEvaluationSQL,
		eval.ID, eval.IdeaID, eval.EvaluatorID, eval.Decision,
		eval.Comments, eval.FileRef, eval.CreatedAt,
	)
	created, err := scanEvaluation(row)
	if err != nil {
		return nil, mapError(err, "evaluation", eval.ID)
	}

	return created, nil
}

// CreateMany appends a batch of evaluation records in one round trip.
// Callers that need all-or-nothing semantics run it inside TxManager.RunInTx;
// within a transaction a failed insert aborts the whole batch.
func (r *Repo) CreateMany(ctx context.Context, evals []*domain.Evaluation) ([]*domain.Evaluation, error) {
	if len(evals) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, eval := range evals {
		batch.Queue(createEvaluationSQL,
			eval.ID, eval.IdeaID, eval.EvaluatorID, eval.Decision,
			eval.Comments, eval.FileRef, eval.CreatedAt,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]*domain.Evaluation, 0, len(evals))
	for i := range evals {
		row := results.QueryRow()
		eval, err := scanEvaluation(row)
		if err != nil {
			return nil, mapError(err, "evaluation", evals[i].ID)
		}
		created = append(created, eval)
	}

	return created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const listEvaluationsByIdeaSQL = `
	SELECT ` + evaluationColumns + `
	FROM evaluations
	WHERE idea_id = $1
	ORDER BY created_at ASC, id ASC`

// ListByIdea returns an idea's full evaluation history ordered by creation
// time ascending. An idea with no evaluations yields an empty slice.
func (r *Repo) ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]*domain.Evaluation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listEvaluationsByIdeaSQL, ideaID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations by idea: %w", err)
	}
	defer rows.Close()

	return scanEvaluations(rows)
}

const latestEvaluationPerIdeaSQL = `
	SELECT DISTINCT ON (idea_id) ` + evaluationColumns + `
	FROM evaluations
	WHERE idea_id = ANY($1)
	ORDER BY idea_id, created_at DESC, id DESC`

// LatestPerIdea returns the most recent evaluation for each of the given
// ideas. Ideas with no evaluations are absent from the map.
func (r *Repo) LatestPerIdea(ctx context.Context, ideaIDs []uuid.UUID) (map[uuid.UUID]*domain.Evaluation, error) {
	if len(ideaIDs) == 0 {
		return map[uuid.UUID]*domain.Evaluation{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, latestEvaluationPerIdeaSQL, ideaIDs)
	if err != nil {
		return nil, fmt.Errorf("latest evaluation per idea: %w", err)
	}
	defer rows.Close()

	evals, err := scanEvaluations(rows)
	if err != nil {
		return nil, err
	}

	latest := make(map[uuid.UUID]*domain.Evaluation, len(evals))
	for _, eval := range evals {
		latest[eval.IdeaID] = eval
	}

	return latest, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanEvaluation(row pgx.Row) (*domain.Evaluation, error) {
	var eval domain.Evaluation
	err := row.Scan(
		&eval.ID, &eval.IdeaID, &eval.EvaluatorID, &eval.Decision,
		&eval.Comments, &eval.FileRef, &eval.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &eval, nil
}

func scanEvaluations(rows pgx.Rows) ([]*domain.Evaluation, error) {
	evals := make([]*domain.Evaluation, 0)
	for rows.Next() {
		eval, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation row: %w", err)
		}
		evals = append(evals, eval)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluation rows: %w", err)
	}
	return evals, nil
}
