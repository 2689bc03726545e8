package repo

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/todo-api/internal/db"
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
