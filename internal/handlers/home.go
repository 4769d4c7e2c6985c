package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/flexe/internal/middleware"
	"github.com/nfrund/flexe/internal/view"
	"github.com/nfrund/flexe/web/src/templates/layouts"
	"github.com/nfrund/flexe/web/src/templates/pages"
)

// HomeHandler handles requests for the home page and the viewer switch.
type HomeHandler struct {
	featured []string
}

// NewHomeHandler creates a new HomeHandler linking to the featured post ids.
func NewHomeHandler(featured []string) *HomeHandler {
	return &HomeHandler{featured: featured}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	pageContent := pages.Home(middleware.ViewerID(c), h.featured)
	finalComponent := layouts.Base("Home", view.GetFlashData(c), pageContent)
	return c.Render(http.StatusOK, "", finalComponent)
}

// SwitchViewer changes who the current session browses as.
func (h *HomeHandler) SwitchViewer(c echo.Context) error {
	var req SwitchViewerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Viewer ids may only contain letters and digits.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	if err := middleware.SetViewerID(c, req.ViewerID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to switch viewer.").SetInternal(err)
	}
	middleware.FromContext(c.Request().Context()).Info("Viewer switched", "viewer_id", req.ViewerID)

	if req.ViewerID == "" {
		view.SetFlashSuccess(c, "Browsing as a guest.")
	} else {
		view.SetFlashSuccess(c, "Now viewing as "+req.ViewerID+".")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
