package item

import (
	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// CreateItemInput holds the parameters for creating an item.
type CreateItemInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	return validateFields(i.Name, i.Description)
}

// UpdateItemInput holds the parameters for updating an item.
// Both fields are replaced, so both are required.
type UpdateItemInput struct {
	ItemID      int
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	return validateFields(i.Name, i.Description)
}

func validateFields(name, description string) error {
	var errs []domain.FieldError

	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
