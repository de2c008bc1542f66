package item

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

type itemRepo interface {
	List(ctx context.Context) ([]*domain.Item, error)
	GetByID(ctx context.Context, id int) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, id int, params domain.ItemUpdateParams) (*domain.Item, error)
	Delete(ctx context.Context, id int) (*domain.Item, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides item management operations.
type Service struct {
	items itemRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Item service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	tx txManager,
) *Service {
	return &Service{
		items: items,
		tx:    tx,
		log:   log.With("service", "item"),
	}
}
