package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// CreateItem validates the input and appends a new item with the next id.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.Create(ctx, &domain.Item{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		slog.Int("item_id", item.ID),
		slog.String("name", item.Name),
	)

	return item, nil
}
