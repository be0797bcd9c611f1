package services

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/pagenote/pagenote-be/internal/database"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated in-memory database. The pool is pinned to a
// single connection so every query sees the same memory store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { db.Close() })
	return db
}

// plainHasher is a deterministic PasswordHasher for tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}
