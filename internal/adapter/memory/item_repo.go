package memory

import (
	"context"
	"slices"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// ItemRepo provides item persistence backed by a Store.
type ItemRepo struct {
	store *Store
}

// NewItemRepo creates a new item repository.
func NewItemRepo(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

// List returns all items in insertion order.
func (r *ItemRepo) List(ctx context.Context) ([]*domain.Item, error) {
	var out []*domain.Item
	r.store.read(ctx, func() {
		out = make([]*domain.Item, 0, len(r.store.items))
		for _, it := range r.store.items {
			out = append(out, it.Clone())
		}
	})
	return out, nil
}

// GetByID returns an item by id.
// Returns *domain.NotFoundError if no item has that id.
func (r *ItemRepo) GetByID(ctx context.Context, id int) (*domain.Item, error) {
	var (
		out *domain.Item
		err error
	)
	r.store.read(ctx, func() {
		idx := r.store.itemIndex(id)
		if idx == -1 {
			err = domain.NewNotFoundError(domain.EntityTypeItem, id)
			return
		}
		out = r.store.items[idx].Clone()
	})
	return out, err
}

// GetByIDs resolves ids to live items in the order given.
// Ids that do not resolve are skipped.
func (r *ItemRepo) GetByIDs(ctx context.Context, ids []int) ([]*domain.Item, error) {
	var out []*domain.Item
	r.store.read(ctx, func() {
		out = make([]*domain.Item, 0, len(ids))
		for _, id := range ids {
			if idx := r.store.itemIndex(id); idx != -1 {
				out = append(out, r.store.items[idx].Clone())
			}
		}
	})
	return out, nil
}

// Create assigns the next id and createdAt, then appends the item.
func (r *ItemRepo) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	var out *domain.Item
	r.store.write(ctx, func() {
		rec := &domain.Item{
			ID:          r.store.nextItemID,
			Name:        item.Name,
			Description: item.Description,
			CreatedAt:   r.store.now(),
		}
		r.store.nextItemID++
		r.store.items = append(r.store.items, rec)
		out = rec.Clone()
	})
	return out, nil
}

// Update changes the given fields in place and sets updatedAt.
// Id and createdAt are preserved.
func (r *ItemRepo) Update(ctx context.Context, id int, params domain.ItemUpdateParams) (*domain.Item, error) {
	var (
		out *domain.Item
		err error
	)
	r.store.write(ctx, func() {
		idx := r.store.itemIndex(id)
		if idx == -1 {
			err = domain.NewNotFoundError(domain.EntityTypeItem, id)
			return
		}
		rec := r.store.items[idx]
		if params.Name != nil {
			rec.Name = *params.Name
		}
		if params.Description != nil {
			rec.Description = *params.Description
		}
		now := r.store.now()
		rec.UpdatedAt = &now
		out = rec.Clone()
	})
	return out, err
}

// Delete removes an item and returns the removed record.
// Collections referencing the item are left untouched.
func (r *ItemRepo) Delete(ctx context.Context, id int) (*domain.Item, error) {
	var (
		out *domain.Item
		err error
	)
	r.store.write(ctx, func() {
		idx := r.store.itemIndex(id)
		if idx == -1 {
			err = domain.NewNotFoundError(domain.EntityTypeItem, id)
			return
		}
		out = r.store.items[idx]
		r.store.items = slices.Delete(r.store.items, idx, idx+1)
	})
	return out, err
}

// Count returns the number of live items.
func (r *ItemRepo) Count(ctx context.Context) (int, error) {
	var n int
	r.store.read(ctx, func() { n = len(r.store.items) })
	return n, nil
}
