package memory

import (
	"context"
	"slices"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// CollectionRepo provides collection persistence and item membership backed by a Store.
type CollectionRepo struct {
	store *Store
}

// NewCollectionRepo creates a new collection repository.
func NewCollectionRepo(store *Store) *CollectionRepo {
	return &CollectionRepo{store: store}
}

// List returns all collections in insertion order.
func (r *CollectionRepo) List(ctx context.Context) ([]*domain.Collection, error) {
	var out []*domain.Collection
	r.store.read(ctx, func() {
		out = make([]*domain.Collection, 0, len(r.store.collections))
		for _, c := range r.store.collections {
			out = append(out, c.Clone())
		}
	})
	return out, nil
}

// GetByID returns a collection by id.
// Returns *domain.NotFoundError if no collection has that id.
func (r *CollectionRepo) GetByID(ctx context.Context, id int) (*domain.Collection, error) {
	var (
		out *domain.Collection
		err error
	)
	r.store.read(ctx, func() {
		idx := r.store.collectionIndex(id)
		if idx == -1 {
			err = domain.NewNotFoundError(domain.EntityTypeCollection, id)
			return
		}
		out = r.store.collections[idx].Clone()
	})
	return out, err
}

// Create assigns the next id and createdAt, then appends the collection
// with the given member ids.
func (r *CollectionRepo) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	var out *domain.Collection
	r.store.write(ctx, func() {
		rec := &domain.Collection{
			ID:          r.store.nextCollectionID,
			Name:        c.Name,
			Description: c.Description,
			ItemIDs:     slices.Clone(c.ItemIDs),
			CreatedAt:   r.store.now(),
		}
		if rec.ItemIDs == nil {
			rec.ItemIDs = []int{}
		}
		r.store.nextCollectionID++
		r.store.collections = append(r.store.collections, rec)
		out = rec.Clone()
	})
	return out, nil
}

// Update changes the given fields in place and sets updatedAt.
func (r *CollectionRepo) Update(ctx context.Context, id int, params domain.CollectionUpdateParams) (*domain.Collection, error) {
	var (
		out *domain.Collection
		err error
	)
	r.store.write(ctx, func() {
		idx := r.store.collectionIndex(id)
		if idx == -1 {
			err = domain.NewNotFoundError(domain.EntityTypeCollection, id)
			return
		}
		rec := r.store.collections[idx]
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

// Delete removes a collection and returns the removed record.
func (r *CollectionRepo) Delete(ctx context.Context, id int) (*domain.Collection, error) {
	var (
		out *domain.Collection
		err error
	)
	r.store.write(ctx, func() {
		idx := r.store.collectionIndex(id)
		if idx == -1 {
			err = domain.NewNotFoundError(domain.EntityTypeCollection, id)
			return
		}
		out = r.store.collections[idx]
		r.store.collections = slices.Delete(r.store.collections, idx, idx+1)
	})
	return out, err
}

// Count returns the number of live collections.
func (r *CollectionRepo) Count(ctx context.Context) (int, error) {
	var n int
	r.store.read(ctx, func() { n = len(r.store.collections) })
	return n, nil
}

// AddItem appends itemID to the collection's members.
// Does not check that the item exists; callers do that inside RunInTx.
// Returns *domain.MembershipError wrapping domain.ErrConflict if already a member.
func (r *CollectionRepo) AddItem(ctx context.Context, collectionID, itemID int) (*domain.Collection, error) {
	var (
		out *domain.Collection
		err error
	)
	r.store.write(ctx, func() {
		idx := r.store.collectionIndex(collectionID)
		if idx == -1 {
			err = domain.NewNotFoundError(domain.EntityTypeCollection, collectionID)
			return
		}
		rec := r.store.collections[idx]
		if rec.HasItem(itemID) {
			err = &domain.MembershipError{CollectionID: collectionID, ItemID: itemID, Err: domain.ErrConflict}
			return
		}
		rec.ItemIDs = append(rec.ItemIDs, itemID)
		out = rec.Clone()
	})
	return out, err
}

// RemoveItem removes itemID from the collection's members.
// Returns *domain.MembershipError wrapping domain.ErrNotFound if it is not a member.
func (r *CollectionRepo) RemoveItem(ctx context.Context, collectionID, itemID int) (*domain.Collection, error) {
	var (
		out *domain.Collection
		err error
	)
	r.store.write(ctx, func() {
		idx := r.store.collectionIndex(collectionID)
		if idx == -1 {
			err = domain.NewNotFoundError(domain.EntityTypeCollection, collectionID)
			return
		}
		rec := r.store.collections[idx]
		pos := slices.Index(rec.ItemIDs, itemID)
		if pos == -1 {
			err = &domain.MembershipError{CollectionID: collectionID, ItemID: itemID, Err: domain.ErrNotFound}
			return
		}
		rec.ItemIDs = slices.Delete(rec.ItemIDs, pos, pos+1)
		out = rec.Clone()
	})
	return out, err
}
