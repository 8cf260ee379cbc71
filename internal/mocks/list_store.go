package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PatrickPenner/shopping-list-api/internal/domain"
	"github.com/PatrickPenner/shopping-list-api/internal/store"
)

// ListStore is an in-memory implementation of store.ListStore that
// reproduces the ownership scoping of the PostgreSQL implementation.
type ListStore struct {
	mu    sync.RWMutex
	lists map[uuid.UUID]*domain.ShoppingList
	items map[uuid.UUID]*domain.Item

	// CreateListErr, when set, is returned by CreateList.
	CreateListErr error
}

// NewListStore creates an empty in-memory list store.
func NewListStore() *ListStore {
	return &ListStore{
		lists: make(map[uuid.UUID]*domain.ShoppingList),
		items: make(map[uuid.UUID]*domain.Item),
	}
}

var _ store.ListStore = (*ListStore)(nil)

// Seed inserts a list and its items directly, bypassing business rules.
func (s *ListStore) Seed(list *domain.ShoppingList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *list
	copied.Items = nil
	s.lists[list.ID] = &copied
	for _, item := range list.Items {
		itemCopy := *item
		s.items[item.ID] = &itemCopy
	}
}

// CreateList implements store.ListStore.CreateList.
func (s *ListStore) CreateList(ctx context.Context, list *domain.ShoppingList) error {
	if s.CreateListErr != nil {
		return s.CreateListErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *list
	copied.Items = nil
	s.lists[list.ID] = &copied
	for _, item := range list.Items {
		itemCopy := *item
		s.items[item.ID] = &itemCopy
	}
	return nil
}

// GetLists implements store.ListStore.GetLists.
func (s *ListStore) GetLists(
	ctx context.Context,
	userID uuid.UUID,
	open *bool,
) ([]*domain.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists := []*domain.ShoppingList{}
	for _, list := range s.lists {
		if list.UserID != userID {
			continue
		}
		if open != nil && list.Open != *open {
			continue
		}
		copied := *list
		lists = append(lists, &copied)
	}
	sort.Slice(lists, func(i, j int) bool {
		return lists[i].CreatedAt.After(lists[j].CreatedAt)
	})
	return lists, nil
}

// GetList implements store.ListStore.GetList.
func (s *ListStore) GetList(
	ctx context.Context,
	userID, listID uuid.UUID,
) (*domain.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getListLocked(userID, listID)
}

func (s *ListStore) getListLocked(userID, listID uuid.UUID) (*domain.ShoppingList, error) {
	list, ok := s.lists[listID]
	if !ok || list.UserID != userID {
		return nil, store.ErrListNotFound
	}
	copied := *list
	return &copied, nil
}

// FindOpenList implements store.ListStore.FindOpenList.
func (s *ListStore) FindOpenList(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, list := range s.lists {
		if list.UserID == userID && list.Open {
			copied := *list
			return &copied, nil
		}
	}
	return nil, store.ErrListNotFound
}

// UpdateListOpen implements store.ListStore.UpdateListOpen.
func (s *ListStore) UpdateListOpen(
	ctx context.Context,
	userID, listID uuid.UUID,
	open bool,
) (*domain.ShoppingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[listID]
	if !ok || list.UserID != userID {
		return nil, store.ErrListNotFound
	}
	list.Open = open
	list.UpdatedAt = time.Now().UTC()
	copied := *list
	return &copied, nil
}

// GetItems implements store.ListStore.GetItems.
func (s *ListStore) GetItems(
	ctx context.Context,
	userID, listID uuid.UUID,
) ([]*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.getListLocked(userID, listID); err != nil {
		return nil, err
	}

	items := []*domain.Item{}
	for _, item := range s.items {
		if item.ListID != listID {
			continue
		}
		copied := *item
		items = append(items, &copied)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

// UpdateItem implements store.ListStore.UpdateItem.
func (s *ListStore) UpdateItem(
	ctx context.Context,
	userID, listID, itemID uuid.UUID,
	name string,
	open bool,
) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getListLocked(userID, listID); err != nil {
		return nil, store.ErrItemNotFound
	}

	item, ok := s.items[itemID]
	if !ok || item.ListID != listID {
		return nil, store.ErrItemNotFound
	}
	item.Name = name
	item.Open = open
	item.UpdatedAt = time.Now().UTC()
	copied := *item
	return &copied, nil
}

// WithTx implements store.ListStore.WithTx. The fake has no
// transactions, so it returns itself.
func (s *ListStore) WithTx(tx *sql.Tx) store.ListStore {
	return s
}
