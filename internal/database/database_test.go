package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nfrund/flexe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPostStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPostStore(DemoPosts()...)

	post, err := store.FindPostByID(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "alice", post.AuthorID)
	assert.Equal(t, 128, post.Stats.Likes)

	_, err = store.FindPostByID(ctx, "404")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	store.Put(domain.Post{ID: "404", AuthorID: "carol"})
	post, err = store.FindPostByID(ctx, "404")
	require.NoError(t, err)
	assert.Equal(t, "carol", post.AuthorID)
}

func TestMemoryPostStoreReturnsCopies(t *testing.T) {
	store := NewMemoryPostStore(domain.Post{ID: "1", Caption: "original"})

	post, err := store.FindPostByID(context.Background(), "1")
	require.NoError(t, err)
	post.Caption = "mutated"

	again, err := store.FindPostByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Caption)
}

func TestDBError(t *testing.T) {
	cause := errors.New("boom")
	err := NewDBError(cause, "find post").WithQuery("SELECT * FROM $post")

	assert.Equal(t, "find post (query: SELECT * FROM $post): boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, NewDBError(ErrNotConnected, "query"), ErrNotConnected)
}

func TestQueryWithoutConnection(t *testing.T) {
	_, err := Query[postRecord](context.Background(), nil, "SELECT * FROM post", nil)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestHasLimitClause(t *testing.T) {
	assert.True(t, hasLimitClause("SELECT * FROM post LIMIT 5"))
	assert.True(t, hasLimitClause("select * from post limit 1"))
	assert.False(t, hasLimitClause("SELECT * FROM $post"))
	assert.False(t, hasLimitClause("SELECT * FROM unlimited"))
}

func TestPostRecordToDomain(t *testing.T) {
	rec := postRecord{Author: "alice", LikeCount: 3, CommentCount: 2, ViewCount: 1, Archived: true}

	post := rec.toDomain()
	assert.Equal(t, "alice", post.AuthorID)
	assert.True(t, post.Archived)
	assert.Equal(t, domain.PostStats{Likes: 3, Comments: 2, Views: 1}, post.Stats)
	assert.Empty(t, post.ID)
}

func TestSurrealPostStoreRejectsEmptyID(t *testing.T) {
	store := NewSurrealPostStore(nil, time.Second)
	_, err := store.FindPostByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRetryer(t *testing.T) {
	r := &Retryer{maxRetries: 2, baseDelay: time.Millisecond, maxDelay: time.Millisecond, multiplier: 1}

	calls := 0
	err := r.Retry(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	calls = 0
	err = r.Retry(context.Background(), func() error {
		calls++
		return errors.New("permanent")
	})
	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, 3, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = r.Retry(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedactDBURL(t *testing.T) {
	assert.Equal(t, "ws://root:xxxxx@localhost:8000/rpc", redactDBURL("ws://root:secret@localhost:8000/rpc"))
	assert.Equal(t, "invalid-url", redactDBURL("://bad"))
}

func TestWithQueryTimeoutOverride(t *testing.T) {
	ctx := context.WithValue(context.Background(), ContextKeyQueryTimeout, time.Hour)
	ctx, cancel := withQueryTimeout(ctx, time.Millisecond)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.Greater(t, time.Until(deadline), time.Minute)
}
