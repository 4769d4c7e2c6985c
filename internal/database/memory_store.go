package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nfrund/flexe/internal/domain"
)

// MemoryPostStore is a PostReader over an in-process map, used in
// development and tests.
type MemoryPostStore struct {
	mu    sync.RWMutex
	posts map[string]domain.Post
}

var _ domain.PostReader = (*MemoryPostStore)(nil)

// NewMemoryPostStore creates a store holding posts.
func NewMemoryPostStore(posts ...domain.Post) *MemoryPostStore {
	s := &MemoryPostStore{posts: make(map[string]domain.Post, len(posts))}
	for _, p := range posts {
		s.Put(p)
	}
	return s
}

// Put inserts or replaces a post.
func (s *MemoryPostStore) Put(p domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = p
}

// FindPostByID implements domain.PostReader.
func (s *MemoryPostStore) FindPostByID(ctx context.Context, id string) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

// DemoPosts seeds the memory store for local development.
func DemoPosts() []domain.Post {
	created := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	return []domain.Post{
		{
			ID:        "42",
			AuthorID:  "alice",
			Caption:   "Sunrise over the harbour",
			Stats:     domain.PostStats{Likes: 128, Comments: 12, Views: 2048},
			CreatedAt: created,
		},
		{
			ID:        "43",
			AuthorID:  "bob",
			Caption:   "First climb of the season",
			Pinned:    true,
			Stats:     domain.PostStats{Likes: 64, Comments: 3, Views: 512},
			CreatedAt: created.Add(24 * time.Hour),
		},
	}
}
