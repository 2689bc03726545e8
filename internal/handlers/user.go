package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/crucial707/todo-api/internal/auth"
	"github.com/crucial707/todo-api/internal/metrics"
	"github.com/crucial707/todo-api/internal/models"
	"github.com/crucial707/todo-api/internal/response"
)

// ==========================
// UserHandler
// ==========================
type UserHandler struct {
	Repo     UserStore
	Messages response.Messages
}

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// passwordRule counts runes, so "한글다섯자" is five characters.
var passwordRule = fmt.Sprintf("min=%d", models.MinPasswordLength)

// ==========================
// Register User (password stored as bcrypt hash, never returned)
// ==========================
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input registerInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Failure(w, h.Messages.InvalidJSON, http.StatusBadRequest)
		return
	}

	if err := validate.Var(input.Password, passwordRule); err != nil {
		response.Failure(w, h.Messages.PasswordTooShort, http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		logStoreError(r, "hash password failed", err)
		response.Failure(w, h.Messages.RegisterFailed, http.StatusInternalServerError)
		return
	}

	user, err := h.Repo.Create(r.Context(), input.Name, input.Email, hash)
	if err != nil {
		logStoreError(r, "register user failed", err)
		response.Failure(w, h.Messages.RegisterFailed, http.StatusInternalServerError)
		return
	}

	metrics.IncUsersRegistered()
	response.Success(w, user.Public())
}
