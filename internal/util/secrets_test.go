package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestLoadSecrets(t *testing.T) {
	t.Run("reads file and applies defaults", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		t.Setenv("LAUNCHPAD_ENV", "test")

		err := os.WriteFile(filepath.Join(dir, "secrets-test.json"), []byte(`{
			"storage": {"driver": "memory"},
			"dappRadar": {"apiKey": "dr-key"},
			"broker": {"endpoint": "http://localhost:9000"}
		}`), 0o600)
		require.NoError(t, err)

		secrets, err := LoadSecrets()
		require.NoError(t, err)

		require.Equal(t, "memory", secrets.Storage.Driver)
		require.Equal(t, "dr-key", secrets.DappRadar.ApiKey)
		require.Equal(t, "http://localhost:9000", secrets.Broker.Endpoint)
		require.Equal(t, DefaultPort, secrets.Port)
		require.Equal(t, DefaultProviderAddress, secrets.Broker.ProviderAddress)
		require.Equal(t, 30, secrets.RateLimit.Burst)
	})

	t.Run("env overrides file", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		t.Setenv("LAUNCHPAD_ENV", "test")
		t.Setenv("PORT", "8081")
		t.Setenv("CRYPTO_RANK_API_KEY", "cr-env")
		t.Setenv("STORAGE_DRIVER", "sqlite")

		err := os.WriteFile(filepath.Join(dir, "secrets-test.json"), []byte(`{
			"port": 3009,
			"cryptoRank": {"apiKey": "cr-file"}
		}`), 0o600)
		require.NoError(t, err)

		secrets, err := LoadSecrets()
		require.NoError(t, err)
		require.Equal(t, 8081, secrets.Port)
		require.Equal(t, "cr-env", secrets.CryptoRank.ApiKey)
		require.Equal(t, "sqlite", secrets.Storage.Driver)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("LAUNCHPAD_ENV", "test")

		secrets, err := LoadSecrets()
		require.NoError(t, err)
		require.Equal(t, "file", secrets.Storage.Driver)
	})

	t.Run("bad port", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("LAUNCHPAD_ENV", "test")
		t.Setenv("PORT", "abc")

		_, err := LoadSecrets()
		require.Error(t, err)
	})
}

func TestDbSecrets_ToConnectionStr(t *testing.T) {
	s := DbSecrets{Host: "localhost", Port: "5432", User: "postgres", Password: "pw", Database: "launchpad"}
	require.Equal(t,
		"host=localhost port=5432 user=postgres password=pw dbname=launchpad sslmode=disable",
		s.ToConnectionStr(),
	)
}
