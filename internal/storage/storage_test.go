package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"launchpad/internal/util"

	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := store.Get(ctx, "never_set")
		require.NoError(t, err)
		require.False(t, ok)
		require.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyInvestors, []byte(`[{"id":"1"}]`)))

		v, ok, err := store.Get(ctx, KeyInvestors)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, `[{"id":"1"}]`, string(v))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyInvestors, []byte(`[]`)))

		v, ok, err := store.Get(ctx, KeyInvestors)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, `[]`, string(v))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, KeyAgents, []byte(`["a"]`)))
		require.NoError(t, store.Set(ctx, KeyInvestments, []byte(`["b"]`)))

		v, _, err := store.Get(ctx, KeyAgents)
		require.NoError(t, err)
		require.Equal(t, `["a"]`, string(v))
	})

	t.Run("rejects path-like keys", func(t *testing.T) {
		require.Error(t, store.Set(ctx, "../escape", []byte(`x`)))
		_, _, err := store.Get(ctx, "")
		require.Error(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())

	t.Run("returned bytes are a copy", func(t *testing.T) {
		ctx := context.Background()
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, KeyAgents, []byte(`abc`)))

		v, _, err := store.Get(ctx, KeyAgents)
		require.NoError(t, err)
		v[0] = 'z'

		again, _, err := store.Get(ctx, KeyAgents)
		require.NoError(t, err)
		require.Equal(t, "abc", string(again))
	})
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	exerciseStore(t, store)

	t.Run("one file per key, no temp files left", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)

		names := []string{}
		for _, e := range entries {
			names = append(names, e.Name())
		}
		require.ElementsMatch(t, []string{"investors.json", "vc_agents.json", "investments.json"}, names)
	})

	t.Run("survives reopen", func(t *testing.T) {
		reopened, err := NewFileStore(dir)
		require.NoError(t, err)
		v, ok, err := reopened.Get(context.Background(), KeyAgents)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, `["a"]`, string(v))
	})
}

func TestSqliteStore(t *testing.T) {
	db, err := OpenSqlite(filepath.Join(t.TempDir(), "launchpad.db"))
	require.NoError(t, err)
	defer db.Close()

	store, err := NewSqliteStore(context.Background(), db)
	require.NoError(t, err)

	exerciseStore(t, store)

	t.Run("table creation is idempotent", func(t *testing.T) {
		_, err := NewSqliteStore(context.Background(), db)
		require.NoError(t, err)
	})
}

func TestPostgresStore(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Skipf("no test database available: %v", err)
	}

	migration, err := os.ReadFile("../db/migrations/0001_local_storage.up.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(migration))
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM local_storage`)
	require.NoError(t, err)

	exerciseStore(t, NewPostgresStore(db))
}
