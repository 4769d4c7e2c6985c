package posttools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/flexe/internal/postmenu"
	"github.com/nfrund/flexe/internal/pubsub"
)

// ErrNoActiveTool is returned when confirming without a matching selection.
var ErrNoActiveTool = errors.New("no active tool for this post")

// Selection is the active tool of one viewer.
type Selection struct {
	ViewerID    string
	PostID      string
	Tool        postmenu.Tool
	ActivatedAt time.Time
}

// Service is the application-wide active tool holder. Each viewer has at
// most one active tool; a new activation replaces the previous one.
type Service struct {
	mu        sync.RWMutex
	active    map[string]Selection
	publisher pubsub.Publisher
	now       func() time.Time
}

// NewService creates a Service publishing its transitions on publisher.
func NewService(publisher pubsub.Publisher) *Service {
	return &Service{
		active:    make(map[string]Selection),
		publisher: publisher,
		now:       time.Now,
	}
}

// Activate records tool as the viewer's active tool for postID.
func (s *Service) Activate(ctx context.Context, viewerID, postID string, tool postmenu.Tool) (Selection, error) {
	if _, err := postmenu.ParseTool(string(tool)); err != nil {
		return Selection{}, err
	}

	sel := Selection{ViewerID: viewerID, PostID: postID, Tool: tool, ActivatedAt: s.now()}
	s.mu.Lock()
	s.active[viewerID] = sel
	s.mu.Unlock()

	s.publish(ctx, ToolActivated, sel, "")
	return sel, nil
}

// Active returns the viewer's current selection.
func (s *Service) Active(viewerID string) (Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.active[viewerID]
	return sel, ok
}

// ActiveFor returns the viewer's selection only when it targets postID.
func (s *Service) ActiveFor(viewerID, postID string) (Selection, bool) {
	sel, ok := s.Active(viewerID)
	if !ok || sel.PostID != postID {
		return Selection{}, false
	}
	return sel, true
}

// Clear dismisses the viewer's active tool for postID. A selection on
// another post is left untouched. It reports whether anything was dismissed.
func (s *Service) Clear(ctx context.Context, viewerID, postID string) bool {
	s.mu.Lock()
	sel, ok := s.active[viewerID]
	if !ok || sel.PostID != postID {
		s.mu.Unlock()
		return false
	}
	delete(s.active, viewerID)
	s.mu.Unlock()

	s.publish(ctx, ToolDismissed, sel, "")
	return true
}

// Confirm publishes the viewer's active tool for postID and clears it.
func (s *Service) Confirm(ctx context.Context, viewerID, postID, note string) (Selection, error) {
	s.mu.Lock()
	sel, ok := s.active[viewerID]
	if !ok || sel.PostID != postID {
		s.mu.Unlock()
		return Selection{}, fmt.Errorf("%w: post %s", ErrNoActiveTool, postID)
	}
	delete(s.active, viewerID)
	s.mu.Unlock()

	s.publish(ctx, ToolConfirmed, sel, note)
	return sel, nil
}

// Publishing is fire-and-forget: the selection is already recorded.
func (s *Service) publish(ctx context.Context, event pubsub.Event[ToolEvent], sel Selection, note string) {
	if s.publisher == nil {
		return
	}
	payload := ToolEvent{PostID: sel.PostID, Tool: string(sel.Tool), Note: note, At: s.now()}
	if err := pubsub.Publish(ctx, s.publisher, event, sel.ViewerID, payload); err != nil {
		slog.WarnContext(ctx, "Failed to publish post tool event", "topic", event.Name(), "post_id", sel.PostID, "error", err)
	}
}
