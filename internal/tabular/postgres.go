package tabular

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// NewPostgresStore opens a Postgres-backed store from a DSN.
func NewPostgresStore(dsn string) (*SQLStore, *sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	return NewPostgresStoreFromDB(db), db, nil
}

// NewPostgresStoreFromDB wraps an existing connection, used by tests that
// inject a mocked *sql.DB.
func NewPostgresStoreFromDB(db *sql.DB) *SQLStore {
	return &SQLStore{
		db:          db,
		placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
	}
}
