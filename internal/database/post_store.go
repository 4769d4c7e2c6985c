package database

import (
	"context"
	"fmt"
	"time"

	"github.com/nfrund/flexe/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

const postTable = "post"

// postRecord is the SurrealDB shape of a post row.
type postRecord struct {
	ID           *surrealmodels.RecordID `json:"id,omitempty"`
	Author       string                  `json:"author"`
	Caption      string                  `json:"caption"`
	Pinned       bool                    `json:"pinned"`
	Archived     bool                    `json:"archived"`
	LikeCount    int                     `json:"likeCount"`
	CommentCount int                     `json:"commentCount"`
	ViewCount    int                     `json:"viewCount"`
	CreatedAt    time.Time               `json:"createdAt"`
}

func (r *postRecord) toDomain() *domain.Post {
	p := &domain.Post{
		AuthorID:  r.Author,
		Caption:   r.Caption,
		Pinned:    r.Pinned,
		Archived:  r.Archived,
		CreatedAt: r.CreatedAt,
		Stats: domain.PostStats{
			Likes:    r.LikeCount,
			Comments: r.CommentCount,
			Views:    r.ViewCount,
		},
	}
	if r.ID != nil {
		p.ID = fmt.Sprint(r.ID.ID)
	}
	return p
}

// SurrealPostStore reads posts from SurrealDB.
type SurrealPostStore struct {
	db      *surrealdb.DB
	timeout time.Duration
}

var _ domain.PostReader = (*SurrealPostStore)(nil)

// NewSurrealPostStore creates a post reader over db.
func NewSurrealPostStore(db *surrealdb.DB, timeout time.Duration) *SurrealPostStore {
	return &SurrealPostStore{db: db, timeout: timeout}
}

// FindPostByID implements domain.PostReader.
func (s *SurrealPostStore) FindPostByID(ctx context.Context, id string) (*domain.Post, error) {
	if id == "" {
		return nil, NewDBError(ErrInvalidInput, "post id cannot be empty")
	}

	ctx, cancel := withQueryTimeout(ctx, s.timeout)
	defer cancel()

	query := "SELECT * FROM $post"
	params := map[string]any{"post": surrealmodels.NewRecordID(postTable, id)}
	rec, err := QueryOne[postRecord](ctx, s.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("find post %s: %w", id, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return rec.toDomain(), nil
}

// Shutdown closes the connection. The injector calls it when the
// application stops.
func (s *SurrealPostStore) Shutdown(ctx context.Context) error {
	return s.db.Close(ctx)
}
