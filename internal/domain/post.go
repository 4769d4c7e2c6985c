package domain

import (
	"context"
	"time"
)

// Post is the read-only view of a post this service needs. Posts are owned
// and mutated by the posts subsystem; we only look them up.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Caption   string    `json:"caption"`
	Pinned    bool      `json:"pinned"`
	Archived  bool      `json:"archived"`
	Stats     PostStats `json:"stats"`
	CreatedAt time.Time `json:"created_at"`
}

// PostStats carries the engagement counters shown on the insights page.
type PostStats struct {
	Likes    int `json:"like_count"`
	Comments int `json:"comment_count"`
	Views    int `json:"view_count"`
}

// OwnedBy reports whether viewerID is the author of the post. An empty
// viewer never owns anything.
func (p *Post) OwnedBy(viewerID string) bool {
	return viewerID != "" && p.AuthorID == viewerID
}

// PostReader defines the lookup contract the menu and tool panels depend on.
type PostReader interface {
	// FindPostByID returns ErrNotFound when no post has the given id.
	FindPostByID(ctx context.Context, id string) (*Post, error)
}
