package domain

import (
	"time"

	"github.com/google/uuid"
)

// Idea is a submitted improvement idea moving through the review lifecycle.
// Status is a persisted projection of the latest evaluation decision; it is
// mutated only by the evaluation workflow engine.
type Idea struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Category    IdeaCategory
	Status      IdeaStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTerminal reports whether no engine operation can move the idea further.
func (i *Idea) IsTerminal() bool {
	return i.Status == IdeaStatusApproved || i.Status == IdeaStatusRejected
}
