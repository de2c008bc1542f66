package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns the names of the invalid fields in the order they were reported,
// without duplicates.
func (e *ValidationError) Fields() []string {
	seen := make(map[string]struct{}, len(e.Errors))
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if _, ok := seen[fe.Field]; ok {
			continue
		}
		seen[fe.Field] = struct{}{}
		fields = append(fields, fe.Field)
	}
	return fields
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NotFoundError reports that an id does not resolve to a live entity.
type NotFoundError struct {
	Entity EntityType
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: %s", strings.ToLower(e.Entity.String()), e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a NotFoundError for the given entity and id.
func NewNotFoundError(entity EntityType, id int) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// MembershipError reports a failed membership change. Err is ErrConflict when
// the item is already a member and ErrNotFound when it is not a member.
type MembershipError struct {
	CollectionID int
	ItemID       int
	Err          error
}

func (e *MembershipError) Error() string {
	return fmt.Sprintf("membership item %d in collection %d: %s", e.ItemID, e.CollectionID, e.Err)
}

func (e *MembershipError) Unwrap() error { return e.Err }
