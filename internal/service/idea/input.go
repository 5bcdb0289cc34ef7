package idea

import (
	"strings"

	"github.com/ideahub/ideahub-backend/internal/domain"
)

// CreateInput holds the parameters for submitting a new idea.
type CreateInput struct {
	Title       string
	Description string
	Category    domain.IdeaCategory
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(description) > MaxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination parameters for listing an owner's ideas.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
