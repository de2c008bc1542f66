package item

import (
	"context"
	"fmt"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// ListItems returns all items in insertion order.
func (s *Service) ListItems(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetItem returns a single item by ID.
func (s *Service) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}
