// Package stats reports store counts and process metrics.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

type counter interface {
	Count(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service builds read-only stats snapshots.
type Service struct {
	items       counter
	collections counter
	tx          txManager
	version     string
	startedAt   time.Time
	now         func() time.Time
	log         *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for serverTime and uptime.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new Stats service. Uptime is measured from this call.
func NewService(
	log *slog.Logger,
	items counter,
	collections counter,
	tx txManager,
	version string,
	opts ...Option,
) *Service {
	s := &Service{
		items:       items,
		collections: collections,
		tx:          tx,
		version:     version,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log.With("service", "stats"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.now()
	return s
}

// Snapshot returns the counts of live items and collections taken under one
// lock, together with runtime memory figures.
func (s *Service) Snapshot(ctx context.Context) (*domain.Stats, error) {
	var totalItems, totalCollections int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if totalItems, err = s.items.Count(txCtx); err != nil {
			return fmt.Errorf("count items: %w", err)
		}
		if totalCollections, err = s.collections.Count(txCtx); err != nil {
			return fmt.Errorf("count collections: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	now := s.now()
	st := &domain.Stats{
		TotalItems:       totalItems,
		TotalCollections: totalCollections,
		ServerTime:       now,
		Uptime:           now.Sub(s.startedAt),
		Memory: domain.MemoryUsage{
			HeapAlloc:  ms.HeapAlloc,
			HeapSys:    ms.HeapSys,
			HeapInuse:  ms.HeapInuse,
			StackInuse: ms.StackInuse,
			Sys:        ms.Sys,
			NumGC:      ms.NumGC,
			Goroutines: runtime.NumGoroutine(),
		},
		Version: s.version,
	}

	s.log.DebugContext(ctx, "stats snapshot",
		slog.Int("total_items", st.TotalItems),
		slog.Int("total_collections", st.TotalCollections),
	)

	return st, nil
}
