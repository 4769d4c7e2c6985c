package view

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/flexe/internal/domain"
	"github.com/nfrund/flexe/internal/postmenu"
)

// PostData is the view model of the post page.
type PostData struct {
	Post    *domain.Post
	IsOwner bool
}

// Post renders the post card with its menu trigger and the tool panel slot.
// The slot loads the viewer's active tool, so a reload keeps the dialog open.
// Owners get a badge linking to the insights page.
func Post(data PostData) g.Node {
	p := data.Post
	return h.Article(h.Class("post"), h.ID("post-"+p.ID),
		h.Header(h.Class("post-header"),
			h.Span(h.Class("post-author"), g.Text(p.AuthorID)),
			g.If(p.Pinned, h.Span(h.Class("badge"), g.Text("Pinned"))),
			g.If(p.Archived, h.Span(h.Class("badge"), g.Text("Archived"))),
			g.If(data.IsOwner, h.A(h.Class("badge badge-owner"), h.Href(postmenu.InsightsURL(p.ID)), g.Text("Your post"))),
			MenuTrigger(p.ID),
		),
		h.P(h.Class("post-caption"), g.Text(p.Caption)),
		h.Div(h.ID(ToolPanelID), h.Class("tool-panel-slot"),
			hx.Get(ToolURL(p.ID)),
			hx.Trigger("load"),
			hx.Swap("innerHTML"),
		),
	)
}
