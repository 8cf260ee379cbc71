package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrickPenner/shopping-list-api/internal/api"
	"github.com/PatrickPenner/shopping-list-api/internal/domain"
	"github.com/PatrickPenner/shopping-list-api/internal/mocks"
	"github.com/PatrickPenner/shopping-list-api/internal/service/auth"
)

const testSecret = "test-secret-key-thats-long-enough-for-hmac"

// newTestAuthHandler creates an AuthHandler with an in-memory user
// store holding the given user.
func newTestAuthHandler(t *testing.T, name, password string) (*api.AuthHandler, auth.JWTService) {
	t.Helper()

	userStore := mocks.NewUserStore()
	user, err := domain.NewUser(name, password)
	require.NoError(t, err)
	require.NoError(t, userStore.Create(context.Background(), user))

	jwtService := auth.NewTestJWTService(testSecret, 30*time.Minute, nil)
	handler := api.NewAuthHandler(userStore, jwtService, auth.NewBcryptVerifier())
	return handler, jwtService
}

func postForm(handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestToken(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return bearer token", func(t *testing.T) {
		t.Parallel()
		handler, jwtService := newTestAuthHandler(t, "alice", "correct horse battery staple")

		w := postForm(handler.Token, url.Values{
			"username": {"alice"},
			"password": {"correct horse battery staple"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.TokenResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "bearer", resp.TokenType)

		claims, err := jwtService.ValidateToken(context.Background(), resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t, "alice", "correct horse battery staple")

		w := postForm(handler.Token, url.Values{
			"username": {"alice"},
			"password": {"wrong"},
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.Contains(t, w.Body.String(), "Incorrect username or password")
	})

	t.Run("unknown user answers like wrong password", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t, "alice", "correct horse battery staple")

		w := postForm(handler.Token, url.Values{
			"username": {"mallory"},
			"password": {"whatever"},
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.Contains(t, w.Body.String(), "Incorrect username or password")
	})

	t.Run("missing username", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t, "alice", "correct horse battery staple")

		w := postForm(handler.Token, url.Values{
			"password": {"correct horse battery staple"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t, "alice", "correct horse battery staple")

		w := postForm(handler.Token, url.Values{
			"username": {"alice"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
