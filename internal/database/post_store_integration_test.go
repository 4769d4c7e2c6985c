package database

import (
	"context"
	"testing"

	"github.com/nfrund/flexe/internal/config"
	"github.com/nfrund/flexe/internal/domain"
	"github.com/nfrund/flexe/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go"
)

// setupTestDB connects to the database named in .env.test and registers
// cleanup of the test rows.
func setupTestDB(t *testing.T) (*surrealdb.DB, config.Provider) {
	t.Helper()
	cfg := testutils.SurrealConfigForTests(t)

	ctx := context.Background()
	db, err := Connect(ctx, cfg)
	require.NoError(t, err, "failed to connect to test database")

	t.Cleanup(func() {
		_, _ = surrealdb.Query[any](context.Background(), db, "DELETE post WHERE caption = 'integration'", nil)
		db.Close(context.Background())
	})
	return db, cfg
}

func TestSurrealPostStoreFindPostByID(t *testing.T) {
	db, cfg := setupTestDB(t)
	ctx := context.Background()

	_, err := surrealdb.Query[any](ctx, db,
		"CREATE post:itest CONTENT { author: 'alice', caption: 'integration', likeCount: 7, pinned: true }", nil)
	require.NoError(t, err)

	store := NewSurrealPostStore(db, cfg.GetDBQueryTimeout())

	post, err := store.FindPostByID(ctx, "itest")
	require.NoError(t, err)
	assert.Equal(t, "itest", post.ID)
	assert.Equal(t, "alice", post.AuthorID)
	assert.Equal(t, 7, post.Stats.Likes)
	assert.True(t, post.Pinned)

	_, err = store.FindPostByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
