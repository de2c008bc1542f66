// Package memory implements the item and collection repositories on top of
// process memory. State is volatile and lives for the lifetime of a Store.
//
// Records are kept in insertion order and looked up by linear scan over id.
// The data set is small, so no index is maintained.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// Store owns all in-memory state: two ordered tables and their id counters.
// Ids start at 1 and are never reused, even after deletion.
type Store struct {
	mu sync.RWMutex

	items       []*domain.Item
	collections []*domain.Collection

	nextItemID       int
	nextCollectionID int

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		nextItemID:       1,
		nextCollectionID: 1,
		now:              func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping reports store availability. The memory store is always available.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// read runs fn under the read lock unless ctx already holds the store via RunInTx.
func (s *Store) read(ctx context.Context, fn func()) {
	if inTx(ctx, s) {
		fn()
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// write runs fn under the write lock unless ctx already holds the store via RunInTx.
func (s *Store) write(ctx context.Context, fn func()) {
	if inTx(ctx, s) {
		fn()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *Store) itemIndex(id int) int {
	return slices.IndexFunc(s.items, func(it *domain.Item) bool { return it.ID == id })
}

func (s *Store) collectionIndex(id int) int {
	return slices.IndexFunc(s.collections, func(c *domain.Collection) bool { return c.ID == id })
}
