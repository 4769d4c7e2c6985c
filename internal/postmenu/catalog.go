package postmenu

import (
	"net/url"
)

// Section titles.
const (
	SectionActions = "Actions"
	SectionTools   = "Tools"
)

// Entry ids, stable across renders so a selection can be addressed on the wire.
const (
	EntryEdit     = "edit"
	EntryDelete   = "delete"
	EntryArchive  = "archive"
	EntryView     = "view"
	EntryReport   = "report"
	EntryShare    = "share"
	EntryCopyLink = "copy-link"
	EntryInsights = "insights"
	EntryBoost    = "boost"
	EntryPin      = "pin"
)

// CopiedMessage is the notification shown after a successful link copy.
const CopiedMessage = "Link Copied to Clipboard"

// Descriptor is one menu entry.
type Descriptor struct {
	ID         string
	Label      string
	Icon       string
	Action     Action
	Visibility Visibility
}

// Section is an ordered group of entries under a title. Gate hides the whole
// section, heading included.
type Section struct {
	Title   string
	Gate    Visibility
	Entries []Descriptor
}

// EditURL is the edit page of a post.
func EditURL(postID string) string {
	return "/post/edit/" + url.PathEscape(postID)
}

// InsightsURL is the insights page of a post.
func InsightsURL(postID string) string {
	return "/post/insights/" + url.PathEscape(postID)
}

// Catalog builds the full, unfiltered menu for a post. location is the
// current full page URL, used by View Post and Copy Link.
func Catalog(postID, location string) []Section {
	return []Section{
		{
			Title: SectionActions,
			Gate:  Everyone,
			Entries: []Descriptor{
				{ID: EntryEdit, Label: "Edit Post", Icon: "pencil", Action: Navigate{URL: EditURL(postID)}, Visibility: OwnerOnly},
				{ID: EntryDelete, Label: "Delete Post", Icon: "trash", Action: Invoke{Effect: SetTool{Tool: ToolDelete}}, Visibility: OwnerOnly},
				{ID: EntryArchive, Label: "Archive Post", Icon: "arrow-up-tray", Action: Invoke{Effect: SetTool{Tool: ToolArchive}}, Visibility: OwnerOnly},
				{ID: EntryView, Label: "View Post", Icon: "viewfinder-circle", Action: Navigate{URL: location}},
				{ID: EntryReport, Label: "Report Post", Icon: "flag", Action: Invoke{Effect: SetTool{Tool: ToolReport}}, Visibility: ViewerOnly},
				{ID: EntryShare, Label: "Share Post", Icon: "share", Action: Invoke{Effect: SetTool{Tool: ToolShare}}},
				{ID: EntryCopyLink, Label: "Copy Link", Icon: "clipboard", Action: Invoke{Effect: CopyLink{URL: location}}},
			},
		},
		{
			Title: SectionTools,
			Gate:  OwnerOnly,
			Entries: []Descriptor{
				{ID: EntryInsights, Label: "Post Insights", Icon: "chart-bar", Action: Navigate{URL: InsightsURL(postID)}},
				{ID: EntryBoost, Label: "Boost Post", Icon: "chevron-double-up", Action: Invoke{Effect: SetTool{Tool: ToolBoost}}},
				{ID: EntryPin, Label: "Pin Post", Icon: "pin", Action: Invoke{Effect: SetTool{Tool: ToolPin}}},
			},
		},
	}
}
