package postmenu

import (
	g "maragu.dev/gomponents"
)

// Action is what happens when an entry is selected. It is a closed set:
// Navigate, Invoke and Custom are the only implementations.
type Action interface {
	isAction()
}

// Navigate sends the browser to URL.
type Navigate struct {
	URL string
}

// Invoke runs Effect exactly once per activation.
type Invoke struct {
	Effect Effect
}

// Custom is a fully custom row. Render determines the row's markup and Href
// is the navigation embedded in it; no click effect is wired.
type Custom struct {
	Render g.Node
	Href   string
}

func (Navigate) isAction() {}
func (Invoke) isAction()   {}
func (Custom) isAction()   {}

// Effect is a side effect triggered by an Invoke action.
type Effect interface {
	isEffect()
}

// SetTool records Tool as the active tool.
type SetTool struct {
	Tool Tool
}

// CopyLink copies URL to the clipboard and then notifies the user.
type CopyLink struct {
	URL string
}

func (SetTool) isEffect()  {}
func (CopyLink) isEffect() {}
