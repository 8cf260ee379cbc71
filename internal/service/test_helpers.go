package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/PatrickPenner/shopping-list-api/internal/store"
)

// NewTestListService creates a ListService backed by the given store
// without a real database. Transactional writes run directly against
// the store, whose WithTx must tolerate a nil transaction.
func NewTestListService(listStore store.ListStore, logger *slog.Logger) *ListService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ListService{
		listStore: listStore,
		logger:    logger.With(slog.String("component", "list_service")),
		runInTx: func(ctx context.Context, db *sql.DB, fn store.TxFn) error {
			return fn(ctx, nil)
		},
	}
}
