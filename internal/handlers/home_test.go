package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/flexe/internal/handlers"
	"github.com/nfrund/flexe/internal/middleware"
	"github.com/nfrund/flexe/internal/rendering"
)

func newEcho() *echo.Echo {
	h := handlers.NewHomeHandler([]string{"42", "43"})

	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))
	e.Use(middleware.Viewer)
	e.GET("/", h.HomeGet)
	e.POST("/session/viewer", h.SwitchViewer)
	return e
}

// latestCookies keeps the last Set-Cookie per name, as a browser would.
func latestCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	byName := map[string]*http.Cookie{}
	var order []string
	for _, ck := range rec.Result().Cookies() {
		if _, seen := byName[ck.Name]; !seen {
			order = append(order, ck.Name)
		}
		byName[ck.Name] = ck
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

func switchViewer(t *testing.T, e *echo.Echo, id string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"viewer_id": {id}}
	req := httptest.NewRequest(http.MethodPost, "/session/viewer", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func home(e *echo.Echo, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHomeGet(t *testing.T) {
	e := newEcho()

	rec := home(e, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Browsing as a guest")
	assert.Contains(t, body, `href="/posts/42"`)
	assert.Contains(t, body, `href="/posts/43"`)
}

func TestSwitchViewer(t *testing.T) {
	e := newEcho()

	rec := switchViewer(t, e, "alice")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	page := home(e, latestCookies(rec))
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Signed in as alice")
	assert.Contains(t, page.Body.String(), "Now viewing as alice.")
}

func TestSwitchViewerRejectsInvalidID(t *testing.T) {
	e := newEcho()

	rec := switchViewer(t, e, "alice<script>")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	page := home(e, latestCookies(rec))
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Browsing as a guest")
	assert.Contains(t, page.Body.String(), "Viewer ids may only contain letters and digits.")
}
