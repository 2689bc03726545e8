package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/crucial707/todo-api/internal/auth"
	"github.com/crucial707/todo-api/internal/models"
	"github.com/crucial707/todo-api/internal/repo"
	"github.com/crucial707/todo-api/internal/response"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// UserLookup confirms that a token's subject still exists.
type UserLookup interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type key string

const UserIDKey key = "user_id"

// Authenticate requires a valid "Authorization: Bearer <token>" header whose
// subject is a known user, and stores that user id in the request context.
func Authenticate(secret []byte, users UserLookup, msgs response.Messages) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				response.Failure(w, msgs.Unauthorized, http.StatusUnauthorized)
				return
			}

			userID, err := auth.ParseToken(secret, tokenStr)
			if err != nil {
				response.Failure(w, msgs.Unauthorized, http.StatusUnauthorized)
				return
			}

			if _, err := users.GetByID(r.Context(), userID); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					response.Failure(w, msgs.Unauthorized, http.StatusUnauthorized)
					return
				}
				slog.ErrorContext(r.Context(), "token subject lookup failed",
					"request_id", chimw.GetReqID(r.Context()),
					"user_id", userID,
					"kind", repo.Kind(err),
					"error", err)
				response.Failure(w, msgs.Internal, http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID returns the authenticated user id, if any.
func GetUserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(UserIDKey).(int)
	return id, ok
}
