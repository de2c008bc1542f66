package collection

import (
	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// CreateCollectionInput holds the parameters for creating a collection.
type CreateCollectionInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateCollectionInput) Validate() error {
	return validateName(i.Name)
}

// UpdateCollectionInput holds the parameters for updating a collection.
// A nil or empty Description keeps the previous value.
type UpdateCollectionInput struct {
	CollectionID int
	Name         string
	Description  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCollectionInput) Validate() error {
	return validateName(i.Name)
}

// MembershipInput identifies an item and the collection it is added to or removed from.
type MembershipInput struct {
	CollectionID int
	ItemID       int
}

func validateName(name string) error {
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}
