package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	Db *sql.DB
}

func OpenSqlite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", path, err)
	}
	// pooled connections race each other into SQLITE_BUSY
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewSqliteStore creates the local_storage table if it is missing.
func NewSqliteStore(ctx context.Context, db *sql.DB) (Store, error) {
	createTableStatement := `
	CREATE TABLE IF NOT EXISTS local_storage (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.ExecContext(ctx, createTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create local_storage table: %w", err)
	}
	return sqliteStore{Db: db}, nil
}

func (h sqliteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	var value string
	err := h.Db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get local storage key %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (h sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := h.Db.ExecContext(ctx, `
		INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert local storage key %s: %w", key, err)
	}
	return nil
}
