package app

import (
	"context"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/flexe/internal/database"
	"github.com/nfrund/flexe/internal/domain"
	"github.com/nfrund/flexe/internal/posttools"
	"github.com/nfrund/flexe/internal/pubsub"
	"github.com/nfrund/flexe/internal/rendering"
	"github.com/nfrund/flexe/internal/testutils"
)

func TestNewInjector(t *testing.T) {
	i := NewInjector(testutils.ConfigForTests(t))
	t.Cleanup(func() { _ = i.Shutdown() })

	reader, err := do.Invoke[domain.PostReader](i)
	require.NoError(t, err)
	assert.IsType(t, &database.MemoryPostStore{}, reader)

	post, err := reader.FindPostByID(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "alice", post.AuthorID)

	pub := do.MustInvoke[pubsub.Publisher](i)
	sub := do.MustInvoke[pubsub.Subscriber](i)
	bridge := do.MustInvoke[*pubsub.WatermillBridge](i)
	assert.Same(t, bridge, pub)
	assert.Same(t, bridge, sub)

	_, err = do.Invoke[*posttools.Service](i)
	assert.NoError(t, err)
	_, err = do.Invoke[rendering.Renderer](i)
	assert.NoError(t, err)
}

func TestNewPostReaderUnknownStore(t *testing.T) {
	cfg := testutils.ConfigForTests(t)
	cfg.PostStore = "redis"

	_, err := NewPostReader(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown post store")
}

func TestNewModules(t *testing.T) {
	mods := NewModules()
	require.Len(t, mods, 1)
	assert.Equal(t, "posts", mods[0].Name())
}
