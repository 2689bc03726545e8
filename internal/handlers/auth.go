package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/crucial707/todo-api/internal/auth"
	"github.com/crucial707/todo-api/internal/models"
	"github.com/crucial707/todo-api/internal/repo"
	"github.com/crucial707/todo-api/internal/response"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	UserRepo UserStore
	Secret   []byte
	TokenTTL time.Duration
	Messages response.Messages
}

type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// ==========================
// Login (email + password, returns a bearer token)
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Failure(w, h.Messages.InvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.GetByEmail(r.Context(), input.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Failure(w, h.Messages.InvalidCredentials, http.StatusUnauthorized)
			return
		}
		logStoreError(r, "login lookup failed", err)
		response.Failure(w, h.Messages.LoginFailed, http.StatusInternalServerError)
		return
	}

	if !auth.CheckPassword(user.Password, input.Password) {
		response.Failure(w, h.Messages.InvalidCredentials, http.StatusUnauthorized)
		return
	}

	token, err := auth.IssueToken(h.Secret, user.ID, h.TokenTTL)
	if err != nil {
		logStoreError(r, "issue token failed", err)
		response.Failure(w, h.Messages.LoginFailed, http.StatusInternalServerError)
		return
	}

	response.Success(w, LoginResult{Token: token, User: user.Public()})
}
