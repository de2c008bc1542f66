package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// AddItemResult is the collection after a successful add plus the added item.
type AddItemResult struct {
	Collection *domain.Collection
	Item       *domain.Item
}

// AddItem appends an item to the end of a collection's members.
// The collection is checked before the item. Adding an existing member
// returns *domain.MembershipError wrapping domain.ErrConflict.
func (s *Service) AddItem(ctx context.Context, input MembershipInput) (*AddItemResult, error) {
	var result AddItemResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.collections.GetByID(txCtx, input.CollectionID); err != nil {
			return fmt.Errorf("get collection: %w", err)
		}

		item, err := s.items.GetByID(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		c, err := s.collections.AddItem(txCtx, input.CollectionID, input.ItemID)
		if err != nil {
			return fmt.Errorf("add item: %w", err)
		}

		result = AddItemResult{Collection: c, Item: item}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item added to collection",
		slog.Int("collection_id", input.CollectionID),
		slog.Int("item_id", input.ItemID),
	)

	return &result, nil
}

// RemoveItem removes an item id from a collection's members. The item itself
// need not exist, so dangling ids can be cleaned up.
func (s *Service) RemoveItem(ctx context.Context, input MembershipInput) (*domain.Collection, error) {
	c, err := s.collections.RemoveItem(ctx, input.CollectionID, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("remove item: %w", err)
	}

	s.log.InfoContext(ctx, "item removed from collection",
		slog.Int("collection_id", input.CollectionID),
		slog.Int("item_id", input.ItemID),
	)

	return c, nil
}
