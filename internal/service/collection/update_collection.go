package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// UpdateCollection replaces the name of an existing collection and, when a
// non-empty description is given, its description. A missing collection is
// reported before invalid input.
func (s *Service) UpdateCollection(ctx context.Context, input UpdateCollectionInput) (*domain.Collection, error) {
	var updated *domain.Collection
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.collections.GetByID(txCtx, input.CollectionID); err != nil {
			return fmt.Errorf("get collection: %w", err)
		}

		if err := input.Validate(); err != nil {
			return err
		}

		name := input.Name
		params := domain.CollectionUpdateParams{Name: &name}
		if input.Description != nil && *input.Description != "" {
			params.Description = input.Description
		}

		var updateErr error
		updated, updateErr = s.collections.Update(txCtx, input.CollectionID, params)
		if updateErr != nil {
			return fmt.Errorf("update collection: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "collection updated",
		slog.Int("collection_id", updated.ID),
	)

	return updated, nil
}
