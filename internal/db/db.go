package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crucial707/todo-api/internal/config"
	"github.com/crucial707/todo-api/internal/models"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// Connect opens a lib/pq pool and verifies it with a ping.
func Connect(ctx context.Context, dsn string, maxOpen, maxIdle int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		db.SetMaxIdleConns(maxIdle)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// FromSQL wraps an existing postgres connection pool in a gorm handle.
func FromSQL(sqlDB *sql.DB) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig())
}

// OpenSQLite opens a SQLite database and creates the schema from the models.
func OpenSQLite(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, err
	}
	if path == MemoryPath {
		// every pooled connection would otherwise see its own empty database
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Todo{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return gdb, nil
}

// Open builds the process-wide gorm handle for the configured driver.
// Postgres migrations are applied first when cfg.RunMigrations is set.
func Open(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return OpenSQLite(cfg.SQLitePath)
	case "postgres":
		if cfg.RunMigrations {
			if err := Run(cfg.MigrateURL()); err != nil {
				return nil, err
			}
		}
		sqlDB, err := Connect(ctx, cfg.PostgresDSN(), cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
		if err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}
		gdb, err := FromSQL(sqlDB)
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		return gdb, nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

// Close releases the pool underneath gdb.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		// every handler issues a single statement
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 NewLogger(),
	}
}
