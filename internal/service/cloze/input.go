package cloze

import (
	"fmt"
	"strings"

	"github.com/panjuncai/Sola-sub000/internal/domain"
)

// CompareInput holds the parameters for checking one attempt.
// Empty texts are allowed; an empty Language uses the configured default.
type CompareInput struct {
	Expected string
	Attempt  string
	Language string
}

// Validate checks all fields and collects all errors.
func (i *CompareInput) Validate() error {
	var errs []domain.FieldError

	if fe, ok := validateLanguage(i.Language); !ok {
		errs = append(errs, fe)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// BatchItem is one sentence of a batch check.
type BatchItem struct {
	Expected string
	Attempt  string
}

// CompareBatchInput holds the parameters for checking many attempts at once.
type CompareBatchInput struct {
	Language string
	Items    []BatchItem
}

// Validate checks all fields and collects all errors.
func (i *CompareBatchInput) Validate() error {
	var errs []domain.FieldError

	if fe, ok := validateLanguage(i.Language); !ok {
		errs = append(errs, fe)
	}
	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SplitInput holds the article text to split into sentences.
type SplitInput struct {
	Text string
}

// Validate checks all fields and collects all errors.
func (i *SplitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateLanguage(tag string) (domain.FieldError, bool) {
	if strings.TrimSpace(tag) == "" {
		return domain.FieldError{}, true
	}
	if _, err := domain.ParseLanguage(tag); err != nil {
		return domain.FieldError{Field: "language", Message: fmt.Sprintf("invalid language tag %q", tag)}, false
	}
	return domain.FieldError{}, true
}
