package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/todo-api/internal/middleware"
	"github.com/crucial707/todo-api/internal/repo"
	"github.com/crucial707/todo-api/internal/response"
)

func TestTodoHandler_CreateTodo(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "todos"`).
		WithArgs("buy milk", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	h := &TodoHandler{Repo: repo.NewTodoRepo(gdb), Messages: response.English}

	body, _ := json.Marshal(map[string]interface{}{"content": "buy milk", "userId": 1})
	req := httptest.NewRequest("POST", "/todos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.CreateTodo(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("CreateTodo status: got %d, want 200", rr.Code)
	}
	var out struct {
		Success bool `json:"success"`
		Data    struct {
			ID      int    `json:"id"`
			Content string `json:"content"`
			UserID  int    `json:"userId"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success || out.Data.ID != 5 || out.Data.Content != "buy milk" || out.Data.UserID != 1 {
		t.Errorf("unexpected response: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTodoHandler_CreateTodo_StoreFailure(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "todos"`).
		WillReturnError(errors.New("connection reset by peer"))

	h := &TodoHandler{Repo: repo.NewTodoRepo(gdb), Messages: response.English}

	body, _ := json.Marshal(map[string]interface{}{"content": "buy milk", "userId": 1})
	req := httptest.NewRequest("POST", "/todos", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.CreateTodo(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("CreateTodo status: got %d, want 500", rr.Code)
	}
	var out response.Envelope
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Success || out.Error != response.English.CreateTodoFailed {
		t.Errorf("unexpected response: %+v", out)
	}
}

func TestTodoHandler_CreateTodo_ForOtherUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	h := &TodoHandler{Repo: repo.NewTodoRepo(gdb), Messages: response.English}

	body, _ := json.Marshal(map[string]interface{}{"content": "buy milk", "userId": 2})
	req := httptest.NewRequest("POST", "/todos", bytes.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	rr := httptest.NewRecorder()
	h.CreateTodo(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("CreateTodo status: got %d, want 403", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTodoHandler_DeleteTodo(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM "todos" WHERE "todos"."id" = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	h := &TodoHandler{Repo: repo.NewTodoRepo(gdb), Messages: response.English}

	req := requestWithChiURLParams("DELETE", "/todos/5", nil, map[string]string{"id": "5"})
	rr := httptest.NewRecorder()
	h.DeleteTodo(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("DeleteTodo status: got %d, want 200", rr.Code)
	}
	var out map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["success"] != true || out["todoId"] != float64(5) {
		t.Errorf("unexpected response: %v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTodoHandler_DeleteTodo_Twice(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM "todos"`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "todos"`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	h := &TodoHandler{Repo: repo.NewTodoRepo(gdb), Messages: response.English}

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := requestWithChiURLParams("DELETE", "/todos/5", nil, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()
		h.DeleteTodo(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusInternalServerError {
		t.Errorf("codes: got %v, want [200 500]", codes)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestTodoHandler_DeleteTodo_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM "todos"`).
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	h := &TodoHandler{Repo: repo.NewTodoRepo(gdb), Messages: response.English}

	req := requestWithChiURLParams("DELETE", "/todos/999", nil, map[string]string{"id": "999"})
	rr := httptest.NewRecorder()
	h.DeleteTodo(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("DeleteTodo status: got %d, want 500", rr.Code)
	}
	var out response.Envelope
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Success || out.Error != response.English.DeleteTodoFailed {
		t.Errorf("unexpected response: %+v", out)
	}
}

func TestTodoHandler_DeleteTodo_InvalidID(t *testing.T) {
	gdb, mock := newMockDB(t)
	h := &TodoHandler{Repo: repo.NewTodoRepo(gdb), Messages: response.English}

	req := requestWithChiURLParams("DELETE", "/todos/abc", nil, map[string]string{"id": "abc"})
	rr := httptest.NewRecorder()
	h.DeleteTodo(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("DeleteTodo status: got %d, want 500", rr.Code)
	}
	var out response.Envelope
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Success || out.Error != response.English.DeleteTodoFailed {
		t.Errorf("unexpected response: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
