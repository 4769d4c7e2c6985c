package view

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/flexe/internal/postmenu"
)

// MenuTrigger is the element that opens the menu. The menu itself is
// fetched on click so it always reflects the current viewer.
func MenuTrigger(postID string) g.Node {
	return h.Div(h.Class("post-menu-wrapper"),
		h.Button(
			h.Type("button"),
			h.Class("post-menu-trigger"),
			h.Aria("haspopup", "menu"),
			h.Aria("label", "Post options"),
			hx.Get(MenuURL(postID)),
			hx.Target("#"+MenuSlotID(postID)),
			hx.Swap("innerHTML"),
			g.Text("⋯"),
		),
		h.Div(h.ID(MenuSlotID(postID)), h.Class("post-menu-slot")),
	)
}

// Menu renders the filtered menu. Sections after the first are preceded by
// a separator, and every section has its heading followed by a separator.
func Menu(postID string, m postmenu.Menu) g.Node {
	nodes := make([]g.Node, 0, len(m.Sections)*2)
	for i, s := range m.Sections {
		if i > 0 {
			nodes = append(nodes, separator())
		}
		nodes = append(nodes, section(postID, s))
	}
	return h.Div(h.Class("post-menu"), h.Role("menu"), h.Data("post", postID), g.Group(nodes))
}

func section(postID string, s postmenu.Section) g.Node {
	return h.Div(h.Class("menu-group"), h.Role("group"), h.Aria("label", s.Title),
		h.Div(h.Class("menu-label"), g.Text(s.Title)),
		separator(),
		g.Map(s.Entries, func(d postmenu.Descriptor) g.Node {
			return entry(postID, d)
		}),
	)
}

func separator() g.Node {
	return h.Div(h.Class("menu-separator"), h.Role("separator"))
}

func entry(postID string, d postmenu.Descriptor) g.Node {
	common := g.Group{h.Role("menuitem"), h.Class("menu-item"), h.Data("entry", d.ID)}

	switch a := d.Action.(type) {
	case postmenu.Navigate:
		return h.A(common, h.Href(a.URL), Icon(d.Icon), h.Span(g.Text(d.Label)))
	case postmenu.Custom:
		content := a.Render
		if content == nil {
			content = g.Group{Icon(d.Icon), h.Span(g.Text(d.Label))}
		}
		return h.A(common, h.Href(a.Href), content)
	case postmenu.Invoke:
		swap := g.Group{hx.Target("#" + ToolPanelID), hx.Swap("innerHTML")}
		if _, ok := a.Effect.(postmenu.CopyLink); ok {
			swap = g.Group{hx.Swap("none")}
		}
		return h.Button(common, h.Type("button"), hx.Post(ActionURL(postID, d.ID)), swap,
			Icon(d.Icon), h.Span(g.Text(d.Label)))
	default:
		return nil
	}
}

// Icon renders an icon reference as a styled, decorative span.
func Icon(name string) g.Node {
	if name == "" {
		return nil
	}
	return h.Span(h.Class("icon icon-"+name), h.Aria("hidden", "true"))
}
