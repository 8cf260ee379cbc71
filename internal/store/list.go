package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/PatrickPenner/shopping-list-api/internal/domain"
)

// ListStore defines the interface for shopping list and item
// persistence. All read and write operations are scoped to the owning
// user: a list that exists but belongs to someone else behaves exactly
// like a missing one.
type ListStore interface {
	// CreateList saves a new shopping list together with its items.
	CreateList(ctx context.Context, list *domain.ShoppingList) error

	// GetLists retrieves all lists of a user, newest first. When open
	// is non-nil only lists with a matching open state are returned.
	GetLists(ctx context.Context, userID uuid.UUID, open *bool) ([]*domain.ShoppingList, error)

	// GetList retrieves a single list owned by the user.
	// Returns ErrListNotFound if it does not exist or is foreign.
	GetList(ctx context.Context, userID, listID uuid.UUID) (*domain.ShoppingList, error)

	// FindOpenList retrieves the user's open list, if any.
	// Returns ErrListNotFound when the user has no open list.
	FindOpenList(ctx context.Context, userID uuid.UUID) (*domain.ShoppingList, error)

	// UpdateListOpen sets the open state of a list and refreshes its
	// updated timestamp. Returns ErrListNotFound if the list does not
	// exist or is foreign.
	UpdateListOpen(ctx context.Context, userID, listID uuid.UUID, open bool) (*domain.ShoppingList, error)

	// GetItems retrieves the items of a list owned by the user, in
	// insertion order. Returns ErrListNotFound if the list does not
	// exist or is foreign.
	GetItems(ctx context.Context, userID, listID uuid.UUID) ([]*domain.Item, error)

	// UpdateItem sets the name and open state of an item on a list
	// owned by the user. Returns ErrListNotFound or ErrItemNotFound
	// when either is missing or foreign.
	UpdateItem(ctx context.Context, userID, listID, itemID uuid.UUID, name string, open bool) (*domain.Item, error)

	// WithTx returns a ListStore bound to the given transaction.
	WithTx(tx *sql.Tx) ListStore
}
