package postmenu

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownTool is returned when a tool tag is outside the supported set.
var ErrUnknownTool = errors.New("unknown post tool")

// Tool names the post-related panel that should currently be shown.
type Tool string

const (
	ToolDelete  Tool = "delete"
	ToolArchive Tool = "archive"
	ToolReport  Tool = "report"
	ToolShare   Tool = "share"
	ToolBoost   Tool = "boost"
	ToolPin     Tool = "pin"
)

// Tools lists every supported tool in menu order.
var Tools = []Tool{ToolDelete, ToolArchive, ToolReport, ToolShare, ToolBoost, ToolPin}

// ParseTool validates a wire tag.
func ParseTool(tag string) (Tool, error) {
	for _, t := range Tools {
		if string(t) == tag {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTool, tag)
}

var titleCaser = cases.Title(language.English)

// Title returns the heading used on the tool's panel, e.g. "Delete Post".
func (t Tool) Title() string {
	return titleCaser.String(string(t)) + " Post"
}
