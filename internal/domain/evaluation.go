package domain

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is one immutable entry in an idea's audit trail. Records are
// append-only: nothing in the system updates or deletes them, so the set of
// evaluations for an idea is a time-ordered log of every review action,
// including bulk triage and assignment markers.
type Evaluation struct {
	ID          uuid.UUID
	IdeaID      uuid.UUID
	EvaluatorID string
	Decision    Decision
	Comments    string
	FileRef     *string
	CreatedAt   time.Time
}
