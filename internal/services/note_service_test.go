package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO users(username, password_hash) VALUES(?, ?)", username, "x")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestNoteService_LatestWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewNoteService(db)
	owner := seedUser(t, db, "ada")

	require.NoError(t, svc.Save(ctx, owner, 5, "hello"))

	content, err := svc.Latest(ctx, owner, 5)
	require.NoError(t, err)
	require.Equal(t, "hello", content)

	// A second save to the same page supersedes the first without
	// touching it.
	require.NoError(t, svc.Save(ctx, owner, 5, "world"))

	content, err = svc.Latest(ctx, owner, 5)
	require.NoError(t, err)
	require.Equal(t, "world", content)

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM notes WHERE owner_id = ? AND page = ?", owner, 5).Scan(&rows))
	require.Equal(t, 2, rows)
}

func TestNoteService_UnwrittenPageIsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewNoteService(db)
	owner := seedUser(t, db, "ada")

	content, err := svc.Latest(ctx, owner, 99)
	require.NoError(t, err)
	require.Equal(t, "", content)
}

func TestNoteService_OwnerIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewNoteService(db)
	ada := seedUser(t, db, "ada")
	bob := seedUser(t, db, "bob")

	require.NoError(t, svc.Save(ctx, ada, 5, "ada's page"))

	content, err := svc.Latest(ctx, bob, 5)
	require.NoError(t, err)
	require.Equal(t, "", content)

	content, err = svc.Latest(ctx, ada, 5)
	require.NoError(t, err)
	require.Equal(t, "ada's page", content)
}

func TestNoteService_EmptyContentIsValid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewNoteService(db)
	owner := seedUser(t, db, "ada")

	require.NoError(t, svc.Save(ctx, owner, 1, "draft"))
	require.NoError(t, svc.Save(ctx, owner, 1, ""))

	// An explicitly saved empty page reads the same as an unwritten one.
	content, err := svc.Latest(ctx, owner, 1)
	require.NoError(t, err)
	require.Equal(t, "", content)
}

func TestNoteService_CountFor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewNoteService(db)
	ada := seedUser(t, db, "ada")
	bob := seedUser(t, db, "bob")

	count, err := svc.CountFor(ctx, ada)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	require.NoError(t, svc.Save(ctx, ada, 1, "one"))
	require.NoError(t, svc.Save(ctx, ada, 1, "one again"))
	require.NoError(t, svc.Save(ctx, ada, 2, "two"))
	require.NoError(t, svc.Save(ctx, bob, 1, "bob's"))

	// History counts, other owners' saves do not.
	count, err = svc.CountFor(ctx, ada)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	count, err = svc.CountFor(ctx, bob)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
