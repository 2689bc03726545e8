package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/crucial707/todo-api/internal/metrics"
	"github.com/crucial707/todo-api/internal/middleware"
	"github.com/crucial707/todo-api/internal/response"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type TodoHandler struct {
	Repo     TodoStore
	Messages response.Messages
}

// DeleteTodoResponse carries the id at the top level, next to success.
type DeleteTodoResponse struct {
	Success bool `json:"success"`
	TodoID  int  `json:"todoId"`
}

//
// ==========================
// Create Todo
// ==========================
//

// CreateTodo stores a todo for the given userId. Content and userId are not
// checked here; the schema's constraints are the only guard.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Content string `json:"content"`
		UserID  int    `json:"userId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Failure(w, h.Messages.InvalidJSON, http.StatusBadRequest)
		return
	}

	// only set when ownership is enforced
	if callerID, ok := middleware.GetUserID(r.Context()); ok && callerID != input.UserID {
		response.Failure(w, h.Messages.Forbidden, http.StatusForbidden)
		return
	}

	todo, err := h.Repo.Create(r.Context(), input.Content, input.UserID)
	if err != nil {
		logStoreError(r, "create todo failed", err)
		response.Failure(w, h.Messages.CreateTodoFailed, http.StatusInternalServerError)
		return
	}

	metrics.IncTodosCreated()
	response.Success(w, todo)
}

//
// ==========================
// Delete Todo
// ==========================
//

// DeleteTodo removes a todo by id. An unparsable id, a missing todo and a
// failed query all answer the same 500 envelope.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		slog.WarnContext(r.Context(), "delete todo: invalid id",
			"request_id", chimw.GetReqID(r.Context()),
			"id", chi.URLParam(r, "id"))
		response.Failure(w, h.Messages.DeleteTodoFailed, http.StatusInternalServerError)
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		logStoreError(r, "delete todo failed", err)
		response.Failure(w, h.Messages.DeleteTodoFailed, http.StatusInternalServerError)
		return
	}

	metrics.IncTodosDeleted()
	response.JSON(w, http.StatusOK, DeleteTodoResponse{Success: true, TodoID: id})
}
