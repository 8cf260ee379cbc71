package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Shopping list validation errors.
var (
	ErrEmptyListID    = errors.New("list ID cannot be empty")
	ErrEmptyListOwner = errors.New("list must belong to a user")
	ErrEmptyItemID    = errors.New("item ID cannot be empty")
	ErrEmptyItemList  = errors.New("item must belong to a list")
	ErrEmptyItemName  = errors.New("item name cannot be empty")
)

// ShoppingList is a collection of items owned by a single user. Open
// lists are the ones currently being shopped; a user has at most one
// open list at a time (enforced by the service layer).
type ShoppingList struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Open      bool      `json:"open"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
	Items     []*Item   `json:"items,omitempty"`
}

// Item is a single entry on a shopping list. Open items are still to
// be bought.
type Item struct {
	ID        uuid.UUID `json:"id"`
	ListID    uuid.UUID `json:"list_id"`
	Name      string    `json:"name"`
	Open      bool      `json:"open"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// NewShoppingList creates an open shopping list for the given user.
func NewShoppingList(userID uuid.UUID) (*ShoppingList, error) {
	now := time.Now().UTC()
	list := &ShoppingList{
		ID:        uuid.New(),
		UserID:    userID,
		Open:      true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return list, nil
}

// Validate checks the list's fields.
func (l *ShoppingList) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyListID
	}
	if l.UserID == uuid.Nil {
		return ErrEmptyListOwner
	}
	return nil
}

// NewItem creates an item on the given list.
func NewItem(listID uuid.UUID, name string, open bool) (*Item, error) {
	now := time.Now().UTC()
	item := &Item{
		ID:        uuid.New(),
		ListID:    listID,
		Name:      name,
		Open:      open,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks the item's fields.
func (i *Item) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyItemID
	}
	if i.ListID == uuid.Nil {
		return ErrEmptyItemList
	}
	if i.Name == "" {
		return ErrEmptyItemName
	}
	return nil
}
