package handlers

import (
	"bytes"
	"context"
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/todo-api/internal/auth"
	"github.com/crucial707/todo-api/internal/db"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// newMockDB returns a gorm handle on the postgres dialector backed by sqlmock.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := db.FromSQL(sqlDB)
	if err != nil {
		t.Fatalf("db.FromSQL: %v", err)
	}
	return gdb, mock
}

// requestWithChiURLParams returns a request with chi route context and URL params set.
func requestWithChiURLParams(method, path string, body []byte, params map[string]string) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	return r
}

// hashOf matches a bcrypt hash of plain.
type hashOf string

func (h hashOf) Match(v driver.Value) bool {
	s, ok := v.(string)
	return ok && auth.CheckPassword(s, string(h))
}
