package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/crucial707/todo-api/internal/models"
	"github.com/crucial707/todo-api/internal/repo"
	"github.com/crucial707/todo-api/internal/response"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// TodoLookup finds the todo a request targets.
type TodoLookup interface {
	GetByID(ctx context.Context, id int) (*models.Todo, error)
}

// RequireTodoOwner lets a request through only when the authenticated user
// owns the todo named by the {id} URL param. Must run after Authenticate.
// Invalid and unknown ids are passed on so the handler answers them.
func RequireTodoOwner(todos TodoLookup, msgs response.Messages) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				response.Failure(w, msgs.Unauthorized, http.StatusUnauthorized)
				return
			}

			id, err := strconv.Atoi(chi.URLParam(r, "id"))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			todo, err := todos.GetByID(r.Context(), id)
			switch {
			case errors.Is(err, repo.ErrNotFound):
				next.ServeHTTP(w, r)
				return
			case err != nil:
				slog.ErrorContext(r.Context(), "owner lookup failed",
					"request_id", chimw.GetReqID(r.Context()),
					"todo_id", id,
					"kind", repo.Kind(err),
					"error", err)
				response.Failure(w, msgs.Internal, http.StatusInternalServerError)
				return
			}

			if todo.UserID != userID {
				slog.WarnContext(r.Context(), "todo ownership denied",
					"request_id", chimw.GetReqID(r.Context()),
					"todo_id", id,
					"user_id", userID)
				response.Failure(w, msgs.Forbidden, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
