package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/flexe/internal/app"
	"github.com/nfrund/flexe/internal/config"
	"github.com/nfrund/flexe/internal/testutils"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := testutils.ConfigForTests(t)
	s, err := New(context.Background(), cfg, app.NewInjector(cfg), app.NewModules())
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		path     string
		status   int
		contains string
	}{
		{"health", "/health", http.StatusOK, "OK"},
		{"home", "/", http.StatusOK, "Browsing as a guest"},
		{"post page", "/posts/42", http.StatusOK, "Sunrise over the harbour"},
		{"menu fragment", "/posts/43/menu", http.StatusOK, "Copy Link"},
		{"missing post", "/posts/999", http.StatusNotFound, ""},
		{"insights for a guest", "/post/insights/42", http.StatusForbidden, ""},
		{"client script", "/static/js/flexe.js", http.StatusOK, "copy-to-clipboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestFeaturedPosts(t *testing.T) {
	assert.Equal(t, []string{"42", "43"}, featuredPosts(&config.Config{PostStore: config.PostStoreMemory}))
	assert.Empty(t, featuredPosts(&config.Config{PostStore: config.PostStoreSurreal}))
}
