package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("alice", "secret")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "alice", user.Name)
		assert.Equal(t, "secret", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("", "secret")
		assert.ErrorIs(t, err, ErrEmptyUserName)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("alice", "")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})

	t.Run("rejects password over bcrypt limit", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("alice", strings.Repeat("x", 73))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("rejects overlong name", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser(strings.Repeat("a", 65), "secret")
		assert.ErrorIs(t, err, ErrUserNameTooLong)
	})
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name: "valid with hashed password only",
			user: User{
				ID:             uuid.New(),
				Name:           "alice",
				HashedPassword: "$2a$10$somehash",
			},
			wantErr: nil,
		},
		{
			name: "missing ID",
			user: User{
				Name:           "alice",
				HashedPassword: "$2a$10$somehash",
			},
			wantErr: ErrEmptyUserID,
		},
		{
			name: "no password at all",
			user: User{
				ID:   uuid.New(),
				Name: "alice",
			},
			wantErr: ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.user.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
