package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/PatrickPenner/shopping-list-api/internal/domain"
	"github.com/PatrickPenner/shopping-list-api/internal/store"
)

// NewItem describes an item to be placed on a newly created list.
type NewItem struct {
	Name string
	Open bool
}

// ListService owns the shopping list business rules: a user has at
// most one open list, lists are never created empty, and every
// operation is scoped to the requesting user.
type ListService struct {
	db        *sql.DB
	listStore store.ListStore
	logger    *slog.Logger
	runInTx   func(ctx context.Context, db *sql.DB, fn store.TxFn) error // Injectable for testing
}

// NewListService creates a ListService. The database handle is used to
// run multi-statement writes in transactions.
func NewListService(db *sql.DB, listStore store.ListStore, logger *slog.Logger) (*ListService, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if listStore == nil {
		return nil, fmt.Errorf("listStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ListService{
		db:        db,
		listStore: listStore,
		logger:    logger.With(slog.String("component", "list_service")),
		runInTx:   store.RunInTransaction,
	}, nil
}

// GetLists returns the user's lists, optionally filtered by open state.
func (s *ListService) GetLists(
	ctx context.Context,
	userID uuid.UUID,
	open *bool,
) ([]*domain.ShoppingList, error) {
	return s.listStore.GetLists(ctx, userID, open)
}

// CreateList creates an open shopping list with the given items.
// Returns ErrEmptyList when no items are provided and ErrOpenListExists
// when the user already has an open list. The list and item rows are
// written atomically.
func (s *ListService) CreateList(
	ctx context.Context,
	userID uuid.UUID,
	items []NewItem,
) (*domain.ShoppingList, error) {
	if len(items) == 0 {
		return nil, ErrEmptyList
	}

	if err := s.checkNoOpenList(ctx, userID); err != nil {
		return nil, err
	}

	list, err := domain.NewShoppingList(userID)
	if err != nil {
		return nil, err
	}
	for _, newItem := range items {
		item, err := domain.NewItem(list.ID, newItem.Name, newItem.Open)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}

	err = s.runInTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.listStore.WithTx(tx).CreateList(ctx, list)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("shopping list created",
		slog.String("list_id", list.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("item_count", len(list.Items)))
	return list, nil
}

// UpdateList sets the open state of a list. When open is nil nothing
// is changed and the current list is returned with changed=false, so
// the handler can signal a no-op to the client. Reopening is refused
// with ErrOpenListExists while the user has any open list.
func (s *ListService) UpdateList(
	ctx context.Context,
	userID, listID uuid.UUID,
	open *bool,
) (*domain.ShoppingList, bool, error) {
	// The open-list check runs before the ownership lookup, mirroring
	// the order clients already depend on: reopening while any list is
	// open fails even if the target is the open list itself.
	if open != nil && *open {
		if err := s.checkNoOpenList(ctx, userID); err != nil {
			return nil, false, err
		}
	}

	list, err := s.listStore.GetList(ctx, userID, listID)
	if err != nil {
		return nil, false, err
	}

	if open == nil {
		return list, false, nil
	}

	updated, err := s.listStore.UpdateListOpen(ctx, userID, listID, *open)
	if err != nil {
		return nil, false, err
	}

	return updated, true, nil
}

// GetItems returns the items of a list owned by the user.
func (s *ListService) GetItems(
	ctx context.Context,
	userID, listID uuid.UUID,
) ([]*domain.Item, error) {
	return s.listStore.GetItems(ctx, userID, listID)
}

// UpdateItem updates an item's name and open state on a list owned by
// the user.
func (s *ListService) UpdateItem(
	ctx context.Context,
	userID, listID, itemID uuid.UUID,
	name string,
	open bool,
) (*domain.Item, error) {
	return s.listStore.UpdateItem(ctx, userID, listID, itemID, name, open)
}

// checkNoOpenList returns ErrOpenListExists when the user has an open list.
func (s *ListService) checkNoOpenList(ctx context.Context, userID uuid.UUID) error {
	_, err := s.listStore.FindOpenList(ctx, userID)
	if err == nil {
		return ErrOpenListExists
	}
	if errors.Is(err, store.ErrListNotFound) {
		return nil
	}
	return err
}
