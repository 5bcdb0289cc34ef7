package evaluation

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ideahub/ideahub-backend/internal/domain"
)

// SubmitInput holds the parameters for submitting a single evaluation.
type SubmitInput struct {
	IdeaID      uuid.UUID
	EvaluatorID string
	Decision    domain.Decision
	Comments    string
	FileRef     *string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.IdeaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "idea_id", Message: "required"})
	}
	if strings.TrimSpace(i.EvaluatorID) == "" {
		errs = append(errs, domain.FieldError{Field: "evaluator_id", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be ACCEPTED, REJECTED, or NEEDS_REVISION"})
	}
	if strings.TrimSpace(i.Comments) == "" {
		errs = append(errs, domain.FieldError{Field: "comments", Message: "required"})
	}
	if i.FileRef != nil && strings.TrimSpace(*i.FileRef) == "" {
		errs = append(errs, domain.FieldError{Field: "file_ref", Message: "must not be blank when set"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkDecideInput holds the parameters for a bulk status update.
type BulkDecideInput struct {
	IdeaIDs     []uuid.UUID
	EvaluatorID string
	Decision    domain.Decision
}

// Validate checks all fields and collects all errors. The 100-item bound is
// checked separately in BulkDecide so it surfaces as domain.ErrLimitExceeded.
func (i BulkDecideInput) Validate() error {
	var errs []domain.FieldError

	if len(i.IdeaIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "idea_ids", Message: "required"})
	}
	for _, id := range i.IdeaIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "idea_ids", Message: "must not contain a nil id"})
			break
		}
	}
	if strings.TrimSpace(i.EvaluatorID) == "" {
		errs = append(errs, domain.FieldError{Field: "evaluator_id", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be ACCEPTED, REJECTED, or NEEDS_REVISION"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkAssignInput holds the parameters for a bulk assignment.
type BulkAssignInput struct {
	IdeaIDs    []uuid.UUID
	AssigneeID string
}

// Validate checks all fields and collects all errors.
func (i BulkAssignInput) Validate() error {
	var errs []domain.FieldError

	if len(i.IdeaIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "idea_ids", Message: "required"})
	}
	for _, id := range i.IdeaIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "idea_ids", Message: "must not contain a nil id"})
			break
		}
	}
	if strings.TrimSpace(i.AssigneeID) == "" {
		errs = append(errs, domain.FieldError{Field: "assignee_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// QueueInput holds pagination parameters for the evaluation queue.
type QueueInput struct {
	Limit  int
	Offset int
}

// normalize applies defaults and clamps out-of-range values.
func (i QueueInput) normalize(defaultLimit, maxLimit int) QueueInput {
	if i.Limit <= 0 {
		i.Limit = defaultLimit
	}
	if i.Limit > maxLimit {
		i.Limit = maxLimit
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
	return i
}
