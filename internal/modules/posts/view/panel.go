package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/flexe/internal/domain"
	"github.com/nfrund/flexe/internal/postmenu"
	"github.com/nfrund/flexe/internal/posttools"
)

// ReportNoteMaxLen bounds the free-text reason of a report.
const ReportNoteMaxLen = 500

// ToolPanel renders the dialog for the viewer's active tool. shareURL is
// the absolute link offered by the share panel.
func ToolPanel(post *domain.Post, sel posttools.Selection, shareURL string) g.Node {
	body, confirm := panelBody(post, sel.Tool, shareURL)

	return h.Div(h.Class("tool-panel tool-"+string(sel.Tool)), h.Role("dialog"), h.Aria("modal", "true"),
		h.H2(g.Text(sel.Tool.Title())),
		h.Form(
			hx.Post(ConfirmURL(post.ID)),
			hx.Target("#"+ToolPanelID),
			hx.Swap("innerHTML"),
			body,
			h.P(h.ID(ToolErrorID), h.Class("tool-error"), h.Role("alert")),
			h.Div(h.Class("tool-actions"),
				h.Button(h.Type("button"), h.Class("secondary"),
					hx.Delete(ToolURL(post.ID)),
					hx.Target("#"+ToolPanelID),
					hx.Swap("innerHTML"),
					g.Text("Cancel"),
				),
				h.Button(h.Type("submit"), h.Class(confirmClass(sel.Tool)), g.Text(confirm)),
			),
		),
	)
}

func confirmClass(tool postmenu.Tool) string {
	if tool == postmenu.ToolDelete || tool == postmenu.ToolReport {
		return "danger"
	}
	return "primary"
}

func panelBody(post *domain.Post, tool postmenu.Tool, shareURL string) (g.Node, string) {
	switch tool {
	case postmenu.ToolDelete:
		return h.P(g.Text("This permanently removes the post. This cannot be undone.")), "Delete"
	case postmenu.ToolArchive:
		if post.Archived {
			return h.P(g.Text("Restore this post to your profile.")), "Unarchive"
		}
		return h.P(g.Text("Hide this post from your profile without deleting it.")), "Archive"
	case postmenu.ToolReport:
		return g.Group{
			h.Label(h.For("report-note"), g.Text("Why are you reporting this post?")),
			h.Textarea(h.ID("report-note"), h.Name("note"), h.Required(), h.MaxLength(strconv.Itoa(ReportNoteMaxLen)), h.Rows("4")),
		}, "Report"
	case postmenu.ToolShare:
		return g.Group{
			h.Label(h.For("share-url"), g.Text("Share this link")),
			h.Input(h.ID("share-url"), h.Type("url"), h.ReadOnly(), h.Value(shareURL)),
		}, "Share"
	case postmenu.ToolBoost:
		return h.P(g.Text("Promote this post to a wider audience.")), "Boost"
	case postmenu.ToolPin:
		if post.Pinned {
			return h.P(g.Text("Remove this post from the top of your profile.")), "Unpin"
		}
		return h.P(g.Text("Keep this post at the top of your profile.")), "Pin"
	default:
		return nil, "Confirm"
	}
}

// ToolError is swapped into the panel's error slot.
func ToolError(message string) g.Node {
	return g.Text(message)
}

// Confirmed replaces the panel after a successful confirmation.
func Confirmed(sel posttools.Selection) g.Node {
	return h.Div(h.Class("tool-panel tool-done"), h.Role("status"),
		h.P(g.Textf("%s request sent.", sel.Tool.Title())),
	)
}
