package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewer(t *testing.T) {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))

	e.POST("/login/:id", func(c echo.Context) error {
		return SetViewerID(c, c.Param("id"))
	})
	e.GET("/whoami", func(c echo.Context) error {
		return c.String(http.StatusOK, ViewerID(c))
	}, Viewer)

	t.Run("anonymous viewer gets a stable guest id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		guest := rec.Body.String()
		assert.True(t, strings.HasPrefix(guest, GuestPrefix))

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		for _, ck := range rec.Result().Cookies() {
			req.AddCookie(ck)
		}
		again := httptest.NewRecorder()
		e.ServeHTTP(again, req)
		assert.Equal(t, guest, again.Body.String())
	})

	t.Run("viewer from session cookie", func(t *testing.T) {
		login := httptest.NewRecorder()
		e.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/login/alice", nil))
		cookies := login.Result().Cookies()
		require.NotEmpty(t, cookies)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, "alice", rec.Body.String())
	})
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotNil(t, FromContext(req.Context()))
}

func TestLoggerMiddleware(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

	var seen bool
	err := Logger(func(c echo.Context) error {
		_, seen = c.Request().Context().Value(loggerKey).(*slog.Logger)
		return nil
	})(c)
	require.NoError(t, err)
	assert.True(t, seen)
}
