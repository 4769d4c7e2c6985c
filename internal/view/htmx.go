package view

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

// htmx response headers.
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXCurrentURL = "HX-Current-URL"
	HeaderHXTrigger    = "HX-Trigger"
	HeaderHXRedirect   = "HX-Redirect"
	HeaderHXRetarget   = "HX-Retarget"
	HeaderHXReswap     = "HX-Reswap"
)

// Client-side events handled by web/static/js/flexe.js.
const (
	EventCopyToClipboard = "copy-to-clipboard"
	EventToast           = "toast"
	EventMenuClose       = "menu-close"
)

// Toast levels.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is the payload of the toast event.
type Toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Triggers collects HX-Trigger events for one response.
type Triggers map[string]any

// Add queues an event with its detail payload.
func (t Triggers) Add(name string, detail any) {
	t[name] = detail
}

// Write sets the HX-Trigger header. Nothing is written when t is empty.
func (t Triggers) Write(c echo.Context) error {
	if len(t) == 0 {
		return nil
	}
	encoded, err := json.Marshal(map[string]any(t))
	if err != nil {
		return err
	}
	c.Response().Header().Set(HeaderHXTrigger, string(encoded))
	return nil
}

// IsHTMX reports whether the request came from htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get(HeaderHXRequest) == "true"
}

// CurrentURL returns the page URL reported by htmx, or fallback.
func CurrentURL(c echo.Context, fallback string) string {
	if u := c.Request().Header.Get(HeaderHXCurrentURL); u != "" {
		return u
	}
	return fallback
}
