package collection

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

type collectionRepo interface {
	List(ctx context.Context) ([]*domain.Collection, error)
	GetByID(ctx context.Context, id int) (*domain.Collection, error)
	Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	Update(ctx context.Context, id int, params domain.CollectionUpdateParams) (*domain.Collection, error)
	Delete(ctx context.Context, id int) (*domain.Collection, error)
	AddItem(ctx context.Context, collectionID, itemID int) (*domain.Collection, error)
	RemoveItem(ctx context.Context, collectionID, itemID int) (*domain.Collection, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Item, error)
	GetByIDs(ctx context.Context, ids []int) ([]*domain.Item, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides collection management and item membership operations.
type Service struct {
	collections collectionRepo
	items       itemRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Collection service.
func NewService(
	log *slog.Logger,
	collections collectionRepo,
	items itemRepo,
	tx txManager,
) *Service {
	return &Service{
		collections: collections,
		items:       items,
		tx:          tx,
		log:         log.With("service", "collection"),
	}
}
