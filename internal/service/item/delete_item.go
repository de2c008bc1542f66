package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// DeleteItem removes an item and returns the removed record.
// Collections that reference the item keep its id.
func (s *Service) DeleteItem(ctx context.Context, itemID int) (*domain.Item, error) {
	item, err := s.items.Delete(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("delete item: %w", err)
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.Int("item_id", item.ID),
	)

	return item, nil
}
