package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/flexe/internal/config"
	"github.com/nfrund/flexe/internal/database"
	"github.com/nfrund/flexe/internal/handlers"
	"github.com/nfrund/flexe/internal/middleware"
)

// RegisterRoutes sets up the application routes that live outside modules.
func (s *Server) RegisterRoutes() {
	homeHandler := handlers.NewHomeHandler(featuredPosts(s.Cfg))
	rateLimiter := middleware.RateLimiter(30)

	s.E.GET("/", homeHandler.HomeGet)
	s.E.POST("/session/viewer", homeHandler.SwitchViewer, rateLimiter)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

// featuredPosts lists the seeded posts. Only the memory store is seeded, so
// other stores feature nothing.
func featuredPosts(cfg config.Provider) []string {
	if cfg.GetPostStore() != config.PostStoreMemory {
		return nil
	}
	featured := make([]string, 0)
	for _, p := range database.DemoPosts() {
		featured = append(featured, p.ID)
	}
	return featured
}
