package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// DeleteCollection removes a collection and returns the removed record.
func (s *Service) DeleteCollection(ctx context.Context, collectionID int) (*domain.Collection, error) {
	c, err := s.collections.Delete(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("delete collection: %w", err)
	}

	s.log.InfoContext(ctx, "collection deleted",
		slog.Int("collection_id", c.ID),
		slog.Int("members", len(c.ItemIDs)),
	)

	return c, nil
}
