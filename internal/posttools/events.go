package posttools

import (
	"time"

	"github.com/nfrund/flexe/internal/pubsub"
)

// ToolEvent is the payload of every posttools topic.
type ToolEvent struct {
	PostID string    `json:"post_id"`
	Tool   string    `json:"tool"`
	Note   string    `json:"note,omitempty"`
	At     time.Time `json:"at"`
}

var (
	// ToolActivated fires whenever a viewer opens a tool panel.
	ToolActivated = pubsub.NewEvent[ToolEvent]("posttools.tool.activated", "A viewer selected a post tool from the action menu")
	// ToolConfirmed fires when the viewer confirms the panel; the posts
	// subsystem performs the mutation.
	ToolConfirmed = pubsub.NewEvent[ToolEvent]("posttools.tool.confirmed", "A viewer confirmed the active post tool")
	// ToolDismissed fires when the panel is closed without confirming.
	ToolDismissed = pubsub.NewEvent[ToolEvent]("posttools.tool.dismissed", "A viewer dismissed the active post tool")
)

// Events lists every topic the service publishes, in lifecycle order.
func Events() []pubsub.Event[ToolEvent] {
	return []pubsub.Event[ToolEvent]{ToolActivated, ToolConfirmed, ToolDismissed}
}
