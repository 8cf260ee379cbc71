package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/PatrickPenner/shopping-list-api/internal/api/shared"
	"github.com/PatrickPenner/shopping-list-api/internal/service/auth"
	"github.com/PatrickPenner/shopping-list-api/internal/store"
)

// AuthHandler handles the token endpoint.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
	}
}

// Token handles POST /auth/. The request carries an OAuth2 password
// grant as form data (username, password); the response is a bearer
// token. Unknown users and wrong passwords both produce the same 401
// so the endpoint doesn't reveal which names exist.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.userStore.GetByName(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			HandleAPIError(w, r, auth.ErrInvalidCredentials, "")
			return
		}
		slog.Error("failed to get user by name", "error", err)
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		HandleAPIError(w, r, auth.ErrInvalidCredentials, "")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Name)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
