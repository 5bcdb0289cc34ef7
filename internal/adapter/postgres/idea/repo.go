// Package idea implements the Idea repository using PostgreSQL.
// Status writes participate in the engine's transaction when the context
// carries one (see postgres.QuerierFromCtx).
package idea

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ideahub/ideahub-backend/internal/adapter/postgres"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

// ideaColumns is the scan order used by all SELECTs in this package.
const ideaColumns = "id, owner_id, title, description, category, status, created_at, updated_at"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides idea persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getIdeaByIDSQL = `SELECT ` + ideaColumns + ` FROM ideas WHERE id = $1`

// GetByID returns an idea by primary key.
// Returns domain.ErrNotFound if the idea does not exist.
func (r *Repo) GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getIdeaByIDSQL, ideaID)
	idea, err := scanIdea(row)
	if err != nil {
		return nil, mapError(err, "idea", ideaID)
	}

	return idea, nil
}

// ListByStatuses returns ideas whose status is in the given set, ordered by
// created_at DESC with pagination. Returns the page and the total matching count.
func (r *Repo) ListByStatuses(ctx context.Context, statuses []domain.IdeaStatus, limit, offset int) ([]*domain.Idea, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	total, err := r.CountByStatuses(ctx, statuses)
	if err != nil {
		return nil, 0, err
	}

	query := builder.
		Select(ideaColumns).
		From("ideas").
		Where(sq.Eq{"status": statusStrings(statuses)}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list ideas query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ideas by status: %w", err)
	}
	defer rows.Close()

	ideas, err := scanIdeas(rows)
	if err != nil {
		return nil, 0, err
	}

	return ideas, total, nil
}

// CountByStatuses returns the number of ideas whose status is in the given set.
func (r *Repo) CountByStatuses(ctx context.Context, statuses []domain.IdeaStatus) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Select("COUNT(*)").
		From("ideas").
		Where(sq.Eq{"status": statusStrings(statuses)})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count ideas query: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ideas by status: %w", err)
	}

	return count, nil
}

const listIdeasByOwnerSQL = `
	SELECT ` + ideaColumns + `
	FROM ideas
	WHERE owner_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2 OFFSET $3`

const countIdeasByOwnerSQL = `SELECT COUNT(*) FROM ideas WHERE owner_id = $1`

// ListByOwner returns a submitter's ideas ordered by created_at DESC with
// pagination. Returns the page and the owner's total idea count.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Idea, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	total, err := r.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, listIdeasByOwnerSQL, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list ideas by owner: %w", err)
	}
	defer rows.Close()

	ideas, err := scanIdeas(rows)
	if err != nil {
		return nil, 0, err
	}

	return ideas, total, nil
}

// CountByOwner returns the number of ideas submitted by an owner.
func (r *Repo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countIdeasByOwnerSQL, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ideas by owner: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createIdeaSQL = `
	INSERT INTO ideas (id, owner_id, title, description, category, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + ideaColumns

// Create inserts a new idea and returns the persisted domain.Idea.
func (r *Repo) Create(ctx context.Context, idea *domain.Idea) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createIdeaSQL,
		idea.ID, idea.OwnerID, idea.Title, idea.Description,
		idea.Category, idea.Status, idea.CreatedAt, idea.UpdatedAt,
	)
	created, err := scanIdea(row)
	if err != nil {
		return nil, mapError(err, "idea", idea.ID)
	}

	return created, nil
}

const updateIdeaStatusSQL = `
	UPDATE ideas
	SET status = $2, updated_at = now()
	WHERE id = $1
	RETURNING ` + ideaColumns

// UpdateStatus sets the idea's status and bumps updated_at. No other field
// changes. Returns domain.ErrNotFound if the idea does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, ideaID uuid.UUID, status domain.IdeaStatus) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateIdeaStatusSQL, ideaID, status)
	updated, err := scanIdea(row)
	if err != nil {
		return nil, mapError(err, "idea", ideaID)
	}

	return updated, nil
}

const updateIdeaStatusManySQL = `
	UPDATE ideas
	SET status = $2, updated_at = now()
	WHERE id = ANY($1)`

// UpdateStatusMany sets the status for every idea in the id set as one
// set-based statement. Returns the number of rows updated.
func (r *Repo) UpdateStatusMany(ctx context.Context, ideaIDs []uuid.UUID, status domain.IdeaStatus) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateIdeaStatusManySQL, ideaIDs, status)
	if err != nil {
		return 0, fmt.Errorf("update idea statuses: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

const deleteSubmittedIdeaSQL = `
	DELETE FROM ideas
	WHERE id = $1 AND owner_id = $2 AND status = 'SUBMITTED'`

// DeleteSubmitted removes an idea that is still in SUBMITTED status and owned
// by ownerID. The status condition lives in the statement so a concurrent
// evaluation cannot race the delete. Returns domain.ErrNotFound when no row
// matched; the caller distinguishes missing from already-under-review.
func (r *Repo) DeleteSubmitted(ctx context.Context, ownerID, ideaID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSubmittedIdeaSQL, ideaID, ownerID)
	if err != nil {
		return mapError(err, "idea", ideaID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("idea %s: %w", ideaID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanIdea(row pgx.Row) (*domain.Idea, error) {
	var idea domain.Idea
	err := row.Scan(
		&idea.ID, &idea.OwnerID, &idea.Title, &idea.Description,
		&idea.Category, &idea.Status, &idea.CreatedAt, &idea.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func scanIdeas(rows pgx.Rows) ([]*domain.Idea, error) {
	ideas := make([]*domain.Idea, 0)
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan idea row: %w", err)
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate idea rows: %w", err)
	}
	return ideas, nil
}

func statusStrings(statuses []domain.IdeaStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
