package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User validation errors.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUserName       = errors.New("user name cannot be empty")
	ErrUserNameTooLong     = errors.New("user name must be at most 64 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

// User represents an account that owns shopping lists. Accounts are
// provisioned out of band; the API only authenticates against them.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Password       string    `json:"-"` // Plaintext, only set transiently during provisioning
	HashedPassword string    `json:"-"` // Never exposed in JSON
	CreatedAt      time.Time `json:"created"`
	UpdatedAt      time.Time `json:"updated"`
}

// NewUser creates a User with a fresh ID and timestamps. The caller is
// responsible for hashing the plaintext password before storage.
func NewUser(name, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      name,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's fields. A user must carry either a
// plaintext password (pre-hash) or a hashed one (post-load).
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyUserName
	}
	if len(u.Name) > 64 {
		return ErrUserNameTooLong
	}

	if u.Password != "" {
		if len(u.Password) > maxPasswordBytes {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
