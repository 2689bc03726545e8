// Package response writes the {success, data|error} JSON envelope shared by
// every endpoint.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response", "error", err)
	}
}

// Success sends {success:true, data} with 200.
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Failure sends {success:false, error} with status.
func Failure(w http.ResponseWriter, message string, status int) {
	JSON(w, status, Envelope{Success: false, Error: message})
}
