package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/nfrund/flexe/internal/config"
	"github.com/nfrund/flexe/internal/database"
	"github.com/nfrund/flexe/internal/domain"
	"github.com/nfrund/flexe/internal/posttools"
	"github.com/nfrund/flexe/internal/pubsub"
	"github.com/nfrund/flexe/internal/rendering"
)

// NewInjector provides the core services shared by every module: the
// configuration, the event bus, the post reader, the tool service and the
// renderer. Providers are lazy; nothing connects until first use. Services
// with a Shutdown method are closed by the injector's Shutdown.
func NewInjector(cfg config.Provider) do.Injector {
	i := do.New()

	do.ProvideValue[config.Provider](i, cfg)

	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.MustAs[*pubsub.WatermillBridge, pubsub.Publisher](i)
	do.MustAs[*pubsub.WatermillBridge, pubsub.Subscriber](i)

	do.Provide(i, func(i do.Injector) (domain.PostReader, error) {
		return NewPostReader(context.Background(), do.MustInvoke[config.Provider](i))
	})

	do.Provide(i, func(i do.Injector) (*posttools.Service, error) {
		return posttools.NewService(do.MustInvoke[pubsub.Publisher](i)), nil
	})

	do.Provide(i, func(i do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	return i
}

// NewPostReader opens the post backend selected by POST_STORE.
func NewPostReader(ctx context.Context, cfg config.Provider) (domain.PostReader, error) {
	switch cfg.GetPostStore() {
	case config.PostStoreMemory:
		slog.Info("Using in-memory post store with demo posts")
		return database.NewMemoryPostStore(database.DemoPosts()...), nil
	case config.PostStoreSurreal:
		db, err := database.Connect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect post store: %w", err)
		}
		return database.NewSurrealPostStore(db, cfg.GetDBQueryTimeout()), nil
	default:
		return nil, fmt.Errorf("unknown post store %q", cfg.GetPostStore())
	}
}
