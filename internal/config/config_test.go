package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// unsetEnv clears a variable for the test while keeping t.Setenv's restore.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "PORT")
	unsetEnv(t, "DATABASE_PATH")
	unsetEnv(t, "JWT_SECRET")
	unsetEnv(t, "TOKEN_TTL")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, "./pagenote.db", cfg.DatabasePath)
	require.Equal(t, devSigningSecret, cfg.SigningSecret)
	require.Equal(t, 168*time.Hour, cfg.TokenTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/notes.db")
	t.Setenv("JWT_SECRET", "configured-secret")
	t.Setenv("TOKEN_TTL", "24h")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.ServerPort)
	require.Equal(t, "/tmp/notes.db", cfg.DatabasePath)
	require.Equal(t, "configured-secret", cfg.SigningSecret)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
