package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"launchpad/internal/db/models/postgres/public/model"
	"launchpad/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	_ "github.com/lib/pq"
)

type postgresStore struct {
	Db *sql.DB
}

// NewPostgresStore expects the local_storage table from
// internal/db/migrations to exist.
func NewPostgresStore(db *sql.DB) Store {
	return postgresStore{Db: db}
}

func (h postgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	query := table.LocalStorage.
		SELECT(table.LocalStorage.AllColumns).
		WHERE(table.LocalStorage.Key.EQ(postgres.String(key)))

	result := model.LocalStorage{}
	err := query.QueryContext(ctx, h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get local storage key %s: %w", key, err)
	}

	return []byte(result.Value), true, nil
}

func (h postgresStore) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m := model.LocalStorage{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	query := table.LocalStorage.
		INSERT(table.LocalStorage.AllColumns).
		MODEL(m).
		ON_CONFLICT(table.LocalStorage.Key).
		DO_UPDATE(postgres.SET(
			table.LocalStorage.Value.SET(table.LocalStorage.EXCLUDED.Value),
			table.LocalStorage.UpdatedAt.SET(table.LocalStorage.EXCLUDED.UpdatedAt),
		))

	_, err := query.ExecContext(ctx, h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert local storage key %s: %w", key, err)
	}

	return nil
}
