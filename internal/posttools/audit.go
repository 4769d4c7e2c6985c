package posttools

import (
	"context"
	"log/slog"

	"github.com/nfrund/flexe/internal/pubsub"
)

// WatchAudit logs every tool transition at info level. It returns once the
// subscriptions are active.
func WatchAudit(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	for _, event := range Events() {
		topic := event.Name()
		err := pubsub.Subscribe(ctx, sub, event, func(ctx context.Context, userID string, e ToolEvent) error {
			logger.InfoContext(ctx, "post tool event",
				"topic", topic,
				"viewer_id", userID,
				"post_id", e.PostID,
				"tool", e.Tool,
			)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
