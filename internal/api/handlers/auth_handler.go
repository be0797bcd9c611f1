package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pagenote/pagenote-be/internal/apperror"
	"github.com/pagenote/pagenote-be/internal/auth"
	"github.com/pagenote/pagenote-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	users  services.UserServiceProvider
	signer auth.TokenSigner
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, signer auth.TokenSigner) *AuthHandler {
	return &AuthHandler{users: users, signer: signer}
}

// CredentialsPayload defines the structure for register and login requests.
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new account creation and issues a token for the account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidationError("Invalid request body"))
		return
	}
	if payload.Username == "" || payload.Password == "" {
		writeError(w, apperror.NewValidationError("username and password are required"))
		return
	}

	user, err := h.users.Create(r.Context(), payload.Username, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		writeError(w, err)
		return
	}

	token, err := h.signer.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue token")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"token":    token,
		"username": user.Username,
	})
}

// Login handles user authentication and token issuance. Any credential
// failure yields the same 401 payload.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewUnauthenticatedError("invalid credentials", nil))
		return
	}

	user, err := h.users.Authenticate(r.Context(), payload.Username, payload.Password)
	if err != nil {
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		writeError(w, err)
		return
	}

	token, err := h.signer.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue token")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":    token,
		"username": user.Username,
	})
}
