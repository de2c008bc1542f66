package collection

import (
	"context"
	"fmt"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// ListCollections returns all collections in insertion order, each with its
// members resolved to live items.
func (s *Service) ListCollections(ctx context.Context) ([]*domain.CollectionView, error) {
	var views []*domain.CollectionView
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		collections, err := s.collections.List(txCtx)
		if err != nil {
			return fmt.Errorf("list collections: %w", err)
		}

		views = make([]*domain.CollectionView, 0, len(collections))
		for _, c := range collections {
			view, err := s.resolve(txCtx, c)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// GetCollection returns a single collection with its members resolved.
func (s *Service) GetCollection(ctx context.Context, collectionID int) (*domain.CollectionView, error) {
	var view *domain.CollectionView
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.collections.GetByID(txCtx, collectionID)
		if err != nil {
			return fmt.Errorf("get collection: %w", err)
		}
		view, err = s.resolve(txCtx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// resolve builds the item details of c. Dangling ids are dropped.
func (s *Service) resolve(ctx context.Context, c *domain.Collection) (*domain.CollectionView, error) {
	items, err := s.items.GetByIDs(ctx, c.ItemIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve collection %d items: %w", c.ID, err)
	}

	details := make([]domain.Item, 0, len(items))
	for _, it := range items {
		details = append(details, *it)
	}
	return &domain.CollectionView{Collection: *c, ItemDetails: details}, nil
}
