package layouts

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/flexe/internal/view"
)

// htmxSrc pins the htmx build the menu markup is written against.
const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Flexe"
	}
	return "Flexe"
}

// Base wraps page content in the document shell: htmx, the client script,
// flash messages and the toast region.
func Base(title string, flash view.FlashData, content g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/flexe.css")),
			h.Script(h.Src(htmxSrc)),
			h.Script(h.Src("/static/js/flexe.js"), h.Defer()),
		},
		Body: []g.Node{
			h.Main(h.Class("container"),
				Flash(flash),
				content,
			),
			h.Div(h.ID("toasts"), h.Class("toasts"), h.Aria("live", "polite")),
		},
	})
}

// Flash renders queued flash messages; nothing when there are none.
func Flash(flash view.FlashData) g.Node {
	if flash.Empty() {
		return nil
	}
	return h.Div(h.Class("flash"),
		g.Map(flash.Success, func(msg string) g.Node {
			return h.P(h.Class("flash-success"), g.Text(msg))
		}),
		g.Map(flash.Error, func(msg string) g.Node {
			return h.P(h.Class("flash-error"), h.Role("alert"), g.Text(msg))
		}),
	)
}
