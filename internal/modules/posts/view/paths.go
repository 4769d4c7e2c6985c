package view

import "net/url"

// PostURL is the page of a post.
func PostURL(postID string) string {
	return "/posts/" + url.PathEscape(postID)
}

// MenuURL serves the menu fragment.
func MenuURL(postID string) string {
	return PostURL(postID) + "/menu"
}

// ActionURL activates one menu entry.
func ActionURL(postID, entryID string) string {
	return PostURL(postID) + "/actions/" + url.PathEscape(entryID)
}

// ToolURL serves and dismisses the active tool panel.
func ToolURL(postID string) string {
	return PostURL(postID) + "/tool"
}

// ConfirmURL confirms the active tool.
func ConfirmURL(postID string) string {
	return ToolURL(postID) + "/confirm"
}

// MenuSlotID is the element the menu fragment is swapped into.
func MenuSlotID(postID string) string {
	return "post-menu-" + postID
}

// ToolPanelID is the element tool panels are swapped into.
const ToolPanelID = "tool-panel"

// ToolErrorID is the element inside a tool panel that shows a rejected
// confirmation.
const ToolErrorID = "tool-error"
