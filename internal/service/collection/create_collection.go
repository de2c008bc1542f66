package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// CreateCollection validates the input and appends a new empty collection.
func (s *Service) CreateCollection(ctx context.Context, input CreateCollectionInput) (*domain.Collection, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var description string
	if input.Description != nil {
		description = *input.Description
	}

	c, err := s.collections.Create(ctx, &domain.Collection{
		Name:        input.Name,
		Description: description,
		ItemIDs:     []int{},
	})
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	s.log.InfoContext(ctx, "collection created",
		slog.Int("collection_id", c.ID),
		slog.String("name", c.Name),
	)

	return c, nil
}
