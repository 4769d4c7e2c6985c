package posts

import (
	"github.com/nfrund/flexe/internal/postmenu"
	"github.com/nfrund/flexe/internal/view"
)

// copyDetail is the payload of the copy-to-clipboard event. The browser
// shows Toast only once the clipboard write has resolved.
type copyDetail struct {
	Text  string      `json:"text"`
	Toast *view.Toast `json:"toast,omitempty"`
}

// httpDispatcher records the effects of a dispatched entry so the handler
// can turn them into a single htmx response.
type httpDispatcher struct {
	redirect string
	tool     postmenu.Tool
	copy     *copyDetail
	triggers view.Triggers
}

var _ postmenu.Dispatcher = (*httpDispatcher)(nil)

func newHTTPDispatcher() *httpDispatcher {
	return &httpDispatcher{triggers: view.Triggers{}}
}

func (d *httpDispatcher) Navigate(url string) {
	d.redirect = url
}

func (d *httpDispatcher) SetActiveTool(tool postmenu.Tool) {
	d.tool = tool
}

// CopyToClipboard cannot fail here; the write happens in the browser.
func (d *httpDispatcher) CopyToClipboard(text string) error {
	d.copy = &copyDetail{Text: text}
	d.triggers.Add(view.EventCopyToClipboard, d.copy)
	return nil
}

// Notify attaches the message to a pending copy so it is only shown after
// the copy succeeds. Otherwise it becomes a plain toast.
func (d *httpDispatcher) Notify(message string) {
	toast := &view.Toast{Level: view.ToastSuccess, Message: message}
	if d.copy != nil {
		d.copy.Toast = toast
		return
	}
	d.triggers.Add(view.EventToast, toast)
}
