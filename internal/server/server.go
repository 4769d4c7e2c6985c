package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"

	"github.com/nfrund/flexe/internal/config"
	"github.com/nfrund/flexe/internal/handlers"
	appmiddleware "github.com/nfrund/flexe/internal/middleware"
	"github.com/nfrund/flexe/internal/module"
	"github.com/nfrund/flexe/internal/rendering"
	"github.com/nfrund/flexe/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	injector do.Injector
	modules  []module.Module
}

// New creates a new Server instance, registering and booting modules.
func New(ctx context.Context, cfg config.Provider, injector do.Injector, modules []module.Module) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = do.MustInvoke[rendering.Renderer](injector).(echo.Renderer)
	setupErrorHandling(e)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))
	e.Use(appmiddleware.Viewer)

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s := &Server{
		E:        e,
		Cfg:      cfg,
		injector: injector,
		modules:  modules,
	}

	for _, m := range modules {
		if err := m.Register(injector); err != nil {
			return nil, fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range modules {
		slog.Info("Booting module", "module", m.Name())
		if err := m.Boot(ctx, e.Group(""), injector); err != nil {
			return nil, fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}

	s.RegisterRoutes()
	return s, nil
}
