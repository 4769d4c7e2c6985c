package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// ViewerContextKey is the echo context key holding the viewer id.
const ViewerContextKey = "viewer_id"

const (
	viewerSessionName = "viewer-session"
	viewerSessionKey  = "id"
)

// GuestPrefix marks viewer ids minted for visitors without a session.
const GuestPrefix = "guest-"

// Viewer reads the viewer id from the session and stores it on the echo
// context. Visitors without one get a guest id so their active tool is
// tracked separately; a guest id never matches a post author.
func Viewer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(viewerSessionName, c)
		if err != nil {
			return err
		}
		viewerID, _ := sess.Values[viewerSessionKey].(string)
		if viewerID == "" {
			viewerID = GuestPrefix + uuid.NewString()
			sess.Values[viewerSessionKey] = viewerID
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				FromContext(c.Request().Context()).Warn("failed to persist guest viewer", "error", err)
			}
		}
		c.Set(ViewerContextKey, viewerID)
		return next(c)
	}
}

// ViewerID returns the id stored by the Viewer middleware.
func ViewerID(c echo.Context) string {
	id, _ := c.Get(ViewerContextKey).(string)
	return id
}

// SetViewerID persists id as the current viewer. An empty id signs out and
// the next request gets a fresh guest id.
func SetViewerID(c echo.Context, id string) error {
	sess, err := session.Get(viewerSessionName, c)
	if err != nil {
		return err
	}
	if id == "" {
		delete(sess.Values, viewerSessionKey)
	} else {
		sess.Values[viewerSessionKey] = id
	}
	c.Set(ViewerContextKey, id)
	return sess.Save(c.Request(), c.Response())
}
