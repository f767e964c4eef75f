package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestGet_AbsentKeyReturnsNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSet_InsertAndOverwrite(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "pilearning_chat_u1", []byte(`[]`)))

	v, err := r.Get(ctx, "pilearning_chat_u1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)

	// whole-value replace on the same key
	require.NoError(t, r.Set(ctx, "pilearning_chat_u1", []byte(`[{"id":"1"}]`)))

	v, err = r.Get(ctx, "pilearning_chat_u1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), v)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestDelete_RemovesKeyAndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("v")))
	require.NoError(t, r.Delete(ctx, "k"))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "k"))
}

func TestKeysAreIndependent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "pilearning_chat_u1", []byte("a")))
	require.NoError(t, r.Set(ctx, "pilearning_chat_u2", []byte("b")))
	require.NoError(t, r.Delete(ctx, "pilearning_chat_u1"))

	v, err := r.Get(ctx, "pilearning_chat_u2")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), v)
}
