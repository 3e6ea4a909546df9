package tabular

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/snowflakedb/gosnowflake" // Snowflake driver
)

// SnowflakeConfig holds the connection settings for a Snowflake-hosted
// reporting warehouse.
type SnowflakeConfig struct {
	Account   string `yaml:"account"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	Database  string `yaml:"database"`
	Schema    string `yaml:"schema"`
	Warehouse string `yaml:"warehouse"`
}

// NewSnowflakeStore opens a Snowflake-backed store. Some clients replicate
// their reporting tables into a warehouse instead of exposing Postgres
// directly; the query shape is identical, only the dialect differs.
func NewSnowflakeStore(cfg SnowflakeConfig) (*SQLStore, *sql.DB, error) {
	// DSN format: user:password@account/database/schema?warehouse=xxx
	dsn := fmt.Sprintf("%s:%s@%s/%s/%s",
		cfg.User,
		cfg.Password,
		cfg.Account,
		cfg.Database,
		cfg.Schema,
	)
	if cfg.Warehouse != "" {
		dsn += "?warehouse=" + cfg.Warehouse
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open snowflake: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping snowflake: %w", err)
	}

	return NewSnowflakeStoreFromDB(db), db, nil
}

// NewSnowflakeStoreFromDB wraps an existing connection.
func NewSnowflakeStoreFromDB(db *sql.DB) *SQLStore {
	return &SQLStore{
		db:          db,
		placeholder: func(int) string { return "?" },
	}
}
