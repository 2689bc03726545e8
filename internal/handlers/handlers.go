package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/crucial707/todo-api/internal/models"
	"github.com/crucial707/todo-api/internal/repo"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// UserStore is the persistence used by user registration and login.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TodoStore is the persistence used by the todo handlers.
type TodoStore interface {
	Create(ctx context.Context, content string, userID int) (*models.Todo, error)
	Delete(ctx context.Context, id int) error
}

var validate = validator.New()

// logStoreError records the cause of a persistence failure that the client
// only sees as a generic message.
func logStoreError(r *http.Request, msg string, err error) {
	slog.ErrorContext(r.Context(), msg,
		"request_id", chimw.GetReqID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"kind", repo.Kind(err),
		"error", err)
}
