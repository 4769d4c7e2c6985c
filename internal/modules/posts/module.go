package posts

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/flexe/internal/config"
	"github.com/nfrund/flexe/internal/domain"
	"github.com/nfrund/flexe/internal/module"
	"github.com/nfrund/flexe/internal/posttools"
	"github.com/nfrund/flexe/internal/pubsub"
	"github.com/nfrund/flexe/internal/rendering"
)

// Module mounts the post page, the action menu and the tool panels.
type Module struct {
	module.BaseModule
	cancelAudit context.CancelFunc
}

var _ module.Module = (*Module)(nil)

// New creates the posts module.
func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "posts"
}

// Register provides the Handler. Its collaborators are resolved lazily so
// registration order between modules does not matter.
func (m *Module) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*Handler, error) {
		return NewHandler(
			do.MustInvoke[domain.PostReader](i),
			do.MustInvoke[*posttools.Service](i),
			do.MustInvoke[rendering.Renderer](i),
			do.MustInvoke[config.Provider](i).GetAppBaseURL(),
		), nil
	})
	return nil
}

// Boot registers the routes and starts the tool audit log.
func (m *Module) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	handler, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}

	auditCtx, cancel := context.WithCancel(context.Background())
	m.cancelAudit = cancel
	sub := do.MustInvoke[pubsub.Subscriber](i)
	if err := posttools.WatchAudit(auditCtx, sub, slog.Default().With("module", m.Name())); err != nil {
		cancel()
		return err
	}

	slog.Info("Registering posts routes")
	p := g.Group("/posts/:id")
	p.GET("", handler.Page)
	p.GET("/menu", handler.Menu)
	p.POST("/actions/:action", handler.Action)
	p.GET("/tool", handler.ToolPanel)
	p.POST("/tool/confirm", handler.ConfirmTool)
	p.DELETE("/tool", handler.DismissTool)

	g.GET("/post/insights/:id", handler.Insights)
	return nil
}

// Shutdown stops the audit subscriptions.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancelAudit != nil {
		m.cancelAudit()
	}
	return nil
}
