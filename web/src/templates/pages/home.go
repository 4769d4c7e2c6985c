package pages

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Home is the landing page: who the current viewer is, a form to switch
// viewer, and links to the featured posts.
func Home(viewerID string, featured []string) g.Node {
	return h.Section(h.Class("home"),
		h.H1(g.Text("Flexe")),
		h.P(h.Class("viewer"), viewerLabel(viewerID)),
		h.Form(h.Method("post"), h.Action("/session/viewer"), h.Class("viewer-switch"),
			h.Label(h.For("viewer_id"), g.Text("View as")),
			h.Input(h.ID("viewer_id"), h.Name("viewer_id"), h.Type("text"), h.Placeholder("user id"), h.MaxLength("64")),
			h.Button(h.Type("submit"), g.Text("Switch")),
		),
		g.If(len(featured) > 0, h.Ul(h.Class("featured"),
			g.Map(featured, func(id string) g.Node {
				return h.Li(h.A(h.Href("/posts/"+id), g.Textf("Post %s", id)))
			}),
		)),
	)
}

func viewerLabel(viewerID string) g.Node {
	if viewerID == "" || strings.HasPrefix(viewerID, "guest-") {
		return g.Text("Browsing as a guest")
	}
	return g.Textf("Signed in as %s", viewerID)
}
