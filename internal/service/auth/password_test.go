package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := NewBcryptVerifier()

	t.Run("accepts matching password", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, verifier.Compare(string(hash), "correct horse"))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare(string(hash), "battery staple"))
	})

	t.Run("rejects garbage hash", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, verifier.Compare("not-a-hash", "correct horse"))
	})
}
