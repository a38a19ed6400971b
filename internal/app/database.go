package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const leadsSchema = `CREATE TABLE IF NOT EXISTS leads (
	id CHAR(36) NOT NULL PRIMARY KEY,
	name VARCHAR(200) NOT NULL,
	email VARCHAR(320) NOT NULL,
	phone VARCHAR(64) NOT NULL,
	service VARCHAR(200) NOT NULL DEFAULT '',
	location VARCHAR(200) NOT NULL DEFAULT '',
	message TEXT NOT NULL,
	source_path VARCHAR(512) NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	KEY leads_created_at (created_at)
) DEFAULT CHARSET=utf8mb4`

// NewDB opens a MySQL connection using sensible defaults.
func NewDB(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, nil
}

// Migrate creates the leads table when it is missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, leadsSchema); err != nil {
		return fmt.Errorf("create leads table: %w", err)
	}
	return nil
}
