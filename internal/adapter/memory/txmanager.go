package memory

import (
	"context"
)

// unexported context key type for marking a held store
type txCtxKey struct{}

func withTx(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, txCtxKey{}, s)
}

func inTx(ctx context.Context, s *Store) bool {
	held, ok := ctx.Value(txCtxKey{}).(*Store)
	return ok && held == s
}

// TxManager runs a sequence of repository calls as one uninterrupted unit.
// Nested RunInTx calls on the same context reuse the held lock.
type TxManager struct {
	store *Store
}

// NewTxManager creates a new TxManager.
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// RunInTx executes fn while holding the store's write lock. Repository calls
// made with the context passed to fn do not lock again. There is no rollback:
// a mutation made before fn returns an error stays applied.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx, m.store) {
		return fn(ctx)
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	return fn(withTx(ctx, m.store))
}
