package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PatrickPenner/shopping-list-api/internal/store"
)

func TestNotFoundHierarchy(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, store.ErrUserNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrListNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrItemNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrUserNameExists, store.ErrDuplicate)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsNotFoundError(store.ErrNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrListNotFound))
	assert.True(t, store.IsNotFoundError(fmt.Errorf("lookup: %w", store.ErrItemNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrDuplicate))
	assert.False(t, store.IsNotFoundError(errors.New("boom")))
	assert.False(t, store.IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsDuplicateError(store.ErrDuplicate))
	assert.True(t, store.IsDuplicateError(store.ErrUserNameExists))
	assert.False(t, store.IsDuplicateError(store.ErrNotFound))
	assert.False(t, store.IsDuplicateError(nil))
}
