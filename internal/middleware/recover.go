package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/crucial707/todo-api/internal/response"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recoverer turns a panic into a logged stack trace and a 500 failure envelope.
func Recoverer(msgs response.Messages) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.ErrorContext(r.Context(), "panic recovered",
					"request_id", chimw.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()))
				response.Failure(w, msgs.Internal, http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
