package posts

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/flexe/internal/domain"
	"github.com/nfrund/flexe/internal/middleware"
	"github.com/nfrund/flexe/internal/modules/posts/view"
	"github.com/nfrund/flexe/internal/postmenu"
	"github.com/nfrund/flexe/internal/posttools"
	"github.com/nfrund/flexe/internal/rendering"
	gview "github.com/nfrund/flexe/internal/view"
	"github.com/nfrund/flexe/web/src/templates/layouts"
)

// Handler serves the post page, its action menu and the tool panels.
type Handler struct {
	posts      domain.PostReader
	tools      *posttools.Service
	renderer   rendering.Renderer
	appBaseURL string
}

// NewHandler creates a new Handler. appBaseURL is used to build absolute
// post links when the browser does not report its current URL.
func NewHandler(posts domain.PostReader, tools *posttools.Service, renderer rendering.Renderer, appBaseURL string) *Handler {
	return &Handler{
		posts:      posts,
		tools:      tools,
		renderer:   renderer,
		appBaseURL: appBaseURL,
	}
}

// bind reads and validates a request DTO.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// loadPost maps lookup failures to HTTP errors.
func (h *Handler) loadPost(c echo.Context, id string) (*domain.Post, error) {
	post, err := h.posts.FindPostByID(c.Request().Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, echo.NewHTTPError(http.StatusNotFound, "Post not found.")
	case err != nil:
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load post.").SetInternal(err)
	}
	return post, nil
}

// location is the page URL the menu was opened from.
func (h *Handler) location(c echo.Context, postID string) string {
	return gview.CurrentURL(c, h.appBaseURL+view.PostURL(postID))
}

// menuFor builds the menu of post as the current viewer sees it.
func (h *Handler) menuFor(c echo.Context, post *domain.Post) postmenu.Menu {
	viewer := postmenu.Viewer{IsOwnProfile: post.OwnedBy(middleware.ViewerID(c))}
	return postmenu.Build(post.ID, viewer, h.location(c, post.ID))
}

// Page renders the post with its menu trigger.
func (h *Handler) Page(c echo.Context) error {
	var req PostRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	post, err := h.loadPost(c, req.PostID)
	if err != nil {
		return err
	}

	data := view.PostData{Post: post, IsOwner: post.OwnedBy(middleware.ViewerID(c))}
	page := layouts.Base("Post", gview.GetFlashData(c), view.Post(data))
	return c.Render(http.StatusOK, "", page)
}

// Menu returns the filtered menu fragment.
func (h *Handler) Menu(c echo.Context) error {
	var req PostRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	post, err := h.loadPost(c, req.PostID)
	if err != nil {
		return err
	}
	return h.renderer.Fragment(c, http.StatusOK, view.Menu(post.ID, h.menuFor(c, post)))
}

// Action dispatches one menu entry. Entries the viewer cannot see are
// treated as missing.
func (h *Handler) Action(c echo.Context) error {
	var req ActionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	post, err := h.loadPost(c, req.PostID)
	if err != nil {
		return err
	}

	entry, ok := h.menuFor(c, post).Find(req.Action)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown action.")
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	d := newHTTPDispatcher()
	if err := postmenu.Dispatch(entry, d); err != nil {
		logger.Error("Failed to dispatch menu entry", "post_id", post.ID, "entry", entry.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Action failed.").SetInternal(err)
	}
	logger.Debug("Dispatched menu entry", "post_id", post.ID, "entry", entry.ID)

	switch {
	case d.redirect != "":
		if !gview.IsHTMX(c) {
			return c.Redirect(http.StatusSeeOther, d.redirect)
		}
		c.Response().Header().Set(gview.HeaderHXRedirect, d.redirect)
		return c.NoContent(http.StatusOK)

	case d.tool != "":
		sel, err := h.tools.Activate(ctx, middleware.ViewerID(c), post.ID, d.tool)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		d.triggers.Add(gview.EventMenuClose, post.ID)
		if err := d.triggers.Write(c); err != nil {
			return err
		}
		return h.renderer.Fragment(c, http.StatusOK, view.ToolPanel(post, sel, h.location(c, post.ID)))

	default:
		d.triggers.Add(gview.EventMenuClose, post.ID)
		if err := d.triggers.Write(c); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	}
}

// ToolPanel renders the viewer's active tool for this post, or nothing.
func (h *Handler) ToolPanel(c echo.Context) error {
	var req PostRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	sel, ok := h.tools.ActiveFor(middleware.ViewerID(c), req.PostID)
	if !ok {
		return c.HTML(http.StatusOK, "")
	}
	post, err := h.loadPost(c, req.PostID)
	if err != nil {
		return err
	}
	return h.renderer.Fragment(c, http.StatusOK, view.ToolPanel(post, sel, h.location(c, post.ID)))
}

// ConfirmTool confirms the active tool and publishes it.
func (h *Handler) ConfirmTool(c echo.Context) error {
	var req ConfirmRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	viewerID := middleware.ViewerID(c)
	active, ok := h.tools.ActiveFor(viewerID, req.PostID)
	if !ok {
		return echo.NewHTTPError(http.StatusConflict, posttools.ErrNoActiveTool.Error())
	}
	if active.Tool == postmenu.ToolReport && req.Note == "" {
		return h.rejectConfirm(c, "A reason is required to report a post.")
	}

	sel, err := h.tools.Confirm(c.Request().Context(), viewerID, req.PostID, req.Note)
	if errors.Is(err, posttools.ErrNoActiveTool) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if err != nil {
		return err
	}

	triggers := gview.Triggers{}
	triggers.Add(gview.EventToast, gview.Toast{Level: gview.ToastSuccess, Message: sel.Tool.Title() + " request sent."})
	if err := triggers.Write(c); err != nil {
		return err
	}
	return h.renderer.Fragment(c, http.StatusOK, view.Confirmed(sel))
}

// rejectConfirm answers 400. htmx requests keep the panel and get the
// message in its error slot plus an error toast.
func (h *Handler) rejectConfirm(c echo.Context, message string) error {
	if !gview.IsHTMX(c) {
		return echo.NewHTTPError(http.StatusBadRequest, message)
	}
	triggers := gview.Triggers{}
	triggers.Add(gview.EventToast, gview.Toast{Level: gview.ToastError, Message: message})
	if err := triggers.Write(c); err != nil {
		return err
	}
	c.Response().Header().Set(gview.HeaderHXRetarget, "#"+view.ToolErrorID)
	c.Response().Header().Set(gview.HeaderHXReswap, "innerHTML")
	return h.renderer.Fragment(c, http.StatusBadRequest, view.ToolError(message))
}

// DismissTool closes the viewer's tool on this post without confirming.
func (h *Handler) DismissTool(c echo.Context) error {
	var req PostRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if !h.tools.Clear(c.Request().Context(), middleware.ViewerID(c), req.PostID) {
		middleware.FromContext(c.Request().Context()).Debug("No tool to dismiss", "post_id", req.PostID)
	}
	return c.HTML(http.StatusOK, "")
}

// Insights shows the post's engagement counters to its author.
func (h *Handler) Insights(c echo.Context) error {
	var req PostRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	post, err := h.loadPost(c, req.PostID)
	if err != nil {
		return err
	}
	if !post.OwnedBy(middleware.ViewerID(c)) {
		return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
	}

	content := gview.TemplToNode(c.Request().Context(), view.Insights(post))
	page := layouts.Base("Post Insights", gview.GetFlashData(c), content)
	return c.Render(http.StatusOK, "", page)
}
