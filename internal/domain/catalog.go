package domain

import (
	"slices"
	"time"
)

// Item is a named, described entity managed by the API.
type Item struct {
	ID          int
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Collection is a named grouping of item ids.
// ItemIDs keeps insertion order and holds no duplicates. Ids of deleted
// items are not removed.
type Collection struct {
	ID          int
	Name        string
	Description string
	ItemIDs     []int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// HasItem reports whether itemID is a member of the collection.
func (c *Collection) HasItem(itemID int) bool {
	return slices.Contains(c.ItemIDs, itemID)
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (c *Collection) Clone() *Collection {
	cp := *c
	cp.ItemIDs = slices.Clone(c.ItemIDs)
	if cp.ItemIDs == nil {
		cp.ItemIDs = []int{}
	}
	if c.UpdatedAt != nil {
		t := *c.UpdatedAt
		cp.UpdatedAt = &t
	}
	return &cp
}

// Clone returns a copy of the item.
func (i *Item) Clone() *Item {
	cp := *i
	if i.UpdatedAt != nil {
		t := *i.UpdatedAt
		cp.UpdatedAt = &t
	}
	return &cp
}

// CollectionView is a collection with its member ids resolved to live items.
type CollectionView struct {
	Collection
	ItemDetails []Item // computed, dangling ids are dropped
}

// Stats is a read-only snapshot of store counts and process metrics.
type Stats struct {
	TotalItems       int
	TotalCollections int
	ServerTime       time.Time
	Uptime           time.Duration
	Memory           MemoryUsage
	Version          string
}

// MemoryUsage holds Go runtime memory figures in bytes.
type MemoryUsage struct {
	HeapAlloc  uint64
	HeapSys    uint64
	HeapInuse  uint64
	StackInuse uint64
	Sys        uint64
	NumGC      uint32
	Goroutines int
}

// ItemUpdateParams holds the fields to change on an item. Nil fields are left unchanged.
type ItemUpdateParams struct {
	Name        *string
	Description *string
}

// CollectionUpdateParams holds the fields to change on a collection. Nil fields are left unchanged.
type CollectionUpdateParams struct {
	Name        *string
	Description *string
}
