package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrickPenner/shopping-list-api/internal/domain"
	"github.com/PatrickPenner/shopping-list-api/internal/mocks"
	"github.com/PatrickPenner/shopping-list-api/internal/service"
	"github.com/PatrickPenner/shopping-list-api/internal/store"
)

// seedList puts a list with a single item into the store.
func seedList(t *testing.T, listStore *mocks.ListStore, userID uuid.UUID, open bool) *domain.ShoppingList {
	t.Helper()

	list, err := domain.NewShoppingList(userID)
	require.NoError(t, err)
	list.Open = open

	item, err := domain.NewItem(list.ID, "Milk", true)
	require.NoError(t, err)
	list.Items = []*domain.Item{item}

	listStore.Seed(list)
	return list
}

func TestCreateList(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("creates open list with items", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)

		list, err := svc.CreateList(context.Background(), userID, []service.NewItem{
			{Name: "Milk", Open: true},
			{Name: "Eggs", Open: true},
		})
		require.NoError(t, err)

		assert.True(t, list.Open)
		assert.Equal(t, userID, list.UserID)
		require.Len(t, list.Items, 2)
		assert.Equal(t, "Milk", list.Items[0].Name)

		items, err := listStore.GetItems(context.Background(), userID, list.ID)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("rejects empty item set", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)

		_, err := svc.CreateList(context.Background(), userID, nil)
		assert.ErrorIs(t, err, service.ErrEmptyList)
	})

	t.Run("rejects second open list", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		seedList(t, listStore, userID, true)

		_, err := svc.CreateList(context.Background(), userID, []service.NewItem{
			{Name: "Bread", Open: true},
		})
		assert.ErrorIs(t, err, service.ErrOpenListExists)
	})

	t.Run("allows new list when previous is closed", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		seedList(t, listStore, userID, false)

		_, err := svc.CreateList(context.Background(), userID, []service.NewItem{
			{Name: "Bread", Open: true},
		})
		assert.NoError(t, err)
	})

	t.Run("another user's open list does not block", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		seedList(t, listStore, uuid.New(), true)

		_, err := svc.CreateList(context.Background(), userID, []service.NewItem{
			{Name: "Bread", Open: true},
		})
		assert.NoError(t, err)
	})
}

func TestUpdateList(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	boolPtr := func(v bool) *bool { return &v }

	t.Run("closes an open list", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		list := seedList(t, listStore, userID, true)

		updated, changed, err := svc.UpdateList(context.Background(), userID, list.ID, boolPtr(false))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, updated.Open)
	})

	t.Run("refuses reopening while another list is open", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		seedList(t, listStore, userID, true)
		closed := seedList(t, listStore, userID, false)

		_, _, err := svc.UpdateList(context.Background(), userID, closed.ID, boolPtr(true))
		assert.ErrorIs(t, err, service.ErrOpenListExists)
	})

	t.Run("reopens a closed list when none is open", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		closed := seedList(t, listStore, userID, false)

		updated, changed, err := svc.UpdateList(context.Background(), userID, closed.ID, boolPtr(true))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, updated.Open)
	})

	t.Run("nil open is a no-op", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		list := seedList(t, listStore, userID, true)

		current, changed, err := svc.UpdateList(context.Background(), userID, list.ID, nil)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.True(t, current.Open)
	})

	t.Run("foreign list reads as missing", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		foreign := seedList(t, listStore, uuid.New(), false)

		_, _, err := svc.UpdateList(context.Background(), userID, foreign.ID, boolPtr(false))
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})

	t.Run("missing list", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)

		_, _, err := svc.UpdateList(context.Background(), userID, uuid.New(), boolPtr(false))
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})
}

func TestGetItems(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("returns items of owned list", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		list := seedList(t, listStore, userID, true)

		items, err := svc.GetItems(context.Background(), userID, list.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Milk", items[0].Name)
	})

	t.Run("foreign list reads as missing", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		foreign := seedList(t, listStore, uuid.New(), true)

		_, err := svc.GetItems(context.Background(), userID, foreign.ID)
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})
}

func TestUpdateItem(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("updates item on owned list", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		list := seedList(t, listStore, userID, true)

		item, err := svc.UpdateItem(
			context.Background(), userID, list.ID, list.Items[0].ID, "Milk", false)
		require.NoError(t, err)
		assert.False(t, item.Open)
	})

	t.Run("item on foreign list reads as missing", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		foreign := seedList(t, listStore, uuid.New(), true)

		_, err := svc.UpdateItem(
			context.Background(), userID, foreign.ID, foreign.Items[0].ID, "Milk", false)
		assert.ErrorIs(t, err, store.ErrItemNotFound)
	})

	t.Run("missing item", func(t *testing.T) {
		t.Parallel()
		listStore := mocks.NewListStore()
		svc := service.NewTestListService(listStore, nil)
		list := seedList(t, listStore, userID, true)

		_, err := svc.UpdateItem(
			context.Background(), userID, list.ID, uuid.New(), "Milk", false)
		assert.ErrorIs(t, err, store.ErrItemNotFound)
	})
}
