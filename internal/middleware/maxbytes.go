package middleware

import (
	"net/http"

	"github.com/crucial707/todo-api/internal/response"
)

// DefaultMaxBodyBytes is the default maximum request body size (1 MiB).
const DefaultMaxBodyBytes = 1 << 20

// MaxBytes rejects bodies declared larger than maxBytes with 413 and caps the
// rest, so an oversized chunked body fails JSON decoding in the handler.
func MaxBytes(maxBytes int64, msgs response.Messages) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				response.Failure(w, msgs.InvalidJSON, http.StatusRequestEntityTooLarge)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
