package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// UpdateItem replaces the name and description of an existing item.
// A missing item is reported before invalid input.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.Item, error) {
	var updated *domain.Item
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.items.GetByID(txCtx, input.ItemID); err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		if err := input.Validate(); err != nil {
			return err
		}

		name, description := input.Name, input.Description

		var updateErr error
		updated, updateErr = s.items.Update(txCtx, input.ItemID, domain.ItemUpdateParams{
			Name:        &name,
			Description: &description,
		})
		if updateErr != nil {
			return fmt.Errorf("update item: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item updated",
		slog.Int("item_id", updated.ID),
	)

	return updated, nil
}
