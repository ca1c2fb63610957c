package persistence

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSQLiteSchema creates the state table in a SQLite database.
func InitSQLiteSchema(db *sql.DB) error {
	return initSchema(db, `
	CREATE TABLE IF NOT EXISTS app_state (
		store_key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`)
}

// InitPostgresSchema creates the state table in a Postgres database.
func InitPostgresSchema(db *sql.DB) error {
	return initSchema(db, `
	CREATE TABLE IF NOT EXISTS app_state (
		store_key TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`)
}

func initSchema(db *sql.DB, statements ...string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
