package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PatrickPenner/shopping-list-api/internal/domain"
	"github.com/PatrickPenner/shopping-list-api/internal/platform/logger"
	"github.com/PatrickPenner/shopping-list-api/internal/store"
)

// ListStore implements store.ListStore using PostgreSQL.
type ListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewListStore creates a PostgreSQL implementation of store.ListStore.
// It accepts a database connection or transaction managed by the caller.
func NewListStore(db store.DBTX, logger *slog.Logger) *ListStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ListStore{
		db:     db,
		logger: logger.With(slog.String("component", "list_store")),
	}
}

var _ store.ListStore = (*ListStore)(nil)

// CreateList implements store.ListStore.CreateList. The list row and
// all item rows are inserted on the store's DBTX; callers that need
// atomicity run this inside a transaction via WithTx.
func (s *ListStore) CreateList(ctx context.Context, list *domain.ShoppingList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := list.Validate(); err != nil {
		log.Warn("list validation failed during create",
			slog.String("error", err.Error()),
			slog.String("list_id", list.ID.String()))
		return err
	}
	for _, item := range list.Items {
		if err := item.Validate(); err != nil {
			log.Warn("item validation failed during create",
				slog.String("error", err.Error()),
				slog.String("item_id", item.ID.String()))
			return err
		}
	}

	query := `
		INSERT INTO shopping_lists (id, user_id, open, created, updated)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		list.ID,
		list.UserID,
		list.Open,
		list.CreatedAt,
		list.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during list creation",
				slog.String("list_id", list.ID.String()),
				slog.String("user_id", list.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, list.UserID)
		}
		log.Error("failed to create list",
			slog.String("error", err.Error()),
			slog.String("list_id", list.ID.String()))
		return MapError(err)
	}

	itemQuery := `
		INSERT INTO items (id, list_id, name, open, created, updated)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, item := range list.Items {
		_, err := s.db.ExecContext(
			ctx,
			itemQuery,
			item.ID,
			item.ListID,
			item.Name,
			item.Open,
			item.CreatedAt,
			item.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to create item",
				slog.String("error", err.Error()),
				slog.String("item_id", item.ID.String()),
				slog.String("list_id", list.ID.String()))
			return MapError(err)
		}
	}

	log.Info("list created",
		slog.String("list_id", list.ID.String()),
		slog.String("user_id", list.UserID.String()),
		slog.Int("item_count", len(list.Items)))
	return nil
}

// GetLists implements store.ListStore.GetLists.
func (s *ListStore) GetLists(
	ctx context.Context,
	userID uuid.UUID,
	open *bool,
) ([]*domain.ShoppingList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, open, created, updated
		FROM shopping_lists
		WHERE user_id = $1
	`
	args := []any{userID}
	if open != nil {
		query += ` AND open = $2`
		args = append(args, *open)
	}
	query += ` ORDER BY created DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query lists",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	lists := []*domain.ShoppingList{}
	for rows.Next() {
		var list domain.ShoppingList
		if err := rows.Scan(
			&list.ID,
			&list.UserID,
			&list.Open,
			&list.CreatedAt,
			&list.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		lists = append(lists, &list)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return lists, nil
}

// GetList implements store.ListStore.GetList.
func (s *ListStore) GetList(
	ctx context.Context,
	userID, listID uuid.UUID,
) (*domain.ShoppingList, error) {
	query := `
		SELECT id, user_id, open, created, updated
		FROM shopping_lists
		WHERE id = $1 AND user_id = $2
	`
	return s.scanList(ctx, query, listID, userID)
}

// FindOpenList implements store.ListStore.FindOpenList.
func (s *ListStore) FindOpenList(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.ShoppingList, error) {
	query := `
		SELECT id, user_id, open, created, updated
		FROM shopping_lists
		WHERE user_id = $1 AND open
		LIMIT 1
	`
	return s.scanList(ctx, query, userID)
}

// scanList runs a single-row list query and maps the result.
func (s *ListStore) scanList(
	ctx context.Context,
	query string,
	args ...any,
) (*domain.ShoppingList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var list domain.ShoppingList
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&list.ID,
		&list.UserID,
		&list.Open,
		&list.CreatedAt,
		&list.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrListNotFound
		}
		log.Error("failed to get list",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &list, nil
}

// UpdateListOpen implements store.ListStore.UpdateListOpen.
func (s *ListStore) UpdateListOpen(
	ctx context.Context,
	userID, listID uuid.UUID,
	open bool,
) (*domain.ShoppingList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE shopping_lists
		SET open = $1, updated = $2
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, open, created, updated
	`

	var list domain.ShoppingList
	err := s.db.QueryRowContext(ctx, query, open, time.Now().UTC(), listID, userID).Scan(
		&list.ID,
		&list.UserID,
		&list.Open,
		&list.CreatedAt,
		&list.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrListNotFound
		}
		log.Error("failed to update list",
			slog.String("error", err.Error()),
			slog.String("list_id", listID.String()))
		return nil, MapError(err)
	}

	log.Info("list updated",
		slog.String("list_id", list.ID.String()),
		slog.Bool("open", list.Open))
	return &list, nil
}

// GetItems implements store.ListStore.GetItems. Ownership of the list
// is checked first so that a foreign list reads as missing.
func (s *ListStore) GetItems(
	ctx context.Context,
	userID, listID uuid.UUID,
) ([]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.GetList(ctx, userID, listID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, list_id, name, open, created, updated
		FROM items
		WHERE list_id = $1
		ORDER BY created
	`

	rows, err := s.db.QueryContext(ctx, query, listID)
	if err != nil {
		log.Error("failed to query items",
			slog.String("error", err.Error()),
			slog.String("list_id", listID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	items := []*domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.ListID,
			&item.Name,
			&item.Open,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// UpdateItem implements store.ListStore.UpdateItem. The list ownership
// check runs first; a missing or foreign list hides its items.
func (s *ListStore) UpdateItem(
	ctx context.Context,
	userID, listID, itemID uuid.UUID,
	name string,
	open bool,
) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.GetList(ctx, userID, listID); err != nil {
		if errors.Is(err, store.ErrListNotFound) {
			return nil, store.ErrItemNotFound
		}
		return nil, err
	}

	query := `
		UPDATE items
		SET name = $1, open = $2, updated = $3
		WHERE id = $4 AND list_id = $5
		RETURNING id, list_id, name, open, created, updated
	`

	var item domain.Item
	err := s.db.QueryRowContext(ctx, query, name, open, time.Now().UTC(), itemID, listID).Scan(
		&item.ID,
		&item.ListID,
		&item.Name,
		&item.Open,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to update item",
			slog.String("error", err.Error()),
			slog.String("item_id", itemID.String()))
		return nil, MapError(err)
	}

	log.Info("item updated",
		slog.String("item_id", item.ID.String()),
		slog.String("list_id", item.ListID.String()),
		slog.Bool("open", item.Open))
	return &item, nil
}

// WithTx implements store.ListStore.WithTx.
func (s *ListStore) WithTx(tx *sql.Tx) store.ListStore {
	return &ListStore{
		db:     tx,
		logger: s.logger,
	}
}
