package format

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/flexe/internal/postmenu"
)

// EntryDisplay represents a menu entry for display purposes
type EntryDisplay struct {
	Section    string `json:"section"`
	ID         string `json:"id"`
	Label      string `json:"label"`
	Icon       string `json:"icon,omitempty"`
	Action     string `json:"action"`
	Target     string `json:"target,omitempty"`
	Visibility string `json:"visibility"`
}

// Entries flattens menu into display rows, in display order.
func Entries(menu postmenu.Menu) []EntryDisplay {
	var rows []EntryDisplay
	for _, s := range menu.Sections {
		for _, d := range s.Entries {
			action, target := describe(d.Action)
			rows = append(rows, EntryDisplay{
				Section:    s.Title,
				ID:         d.ID,
				Label:      d.Label,
				Icon:       d.Icon,
				Action:     action,
				Target:     target,
				Visibility: d.Visibility.String(),
			})
		}
	}
	return rows
}

func describe(a postmenu.Action) (kind, target string) {
	switch a := a.(type) {
	case postmenu.Navigate:
		return "navigate", a.URL
	case postmenu.Custom:
		return "custom", a.Href
	case postmenu.Invoke:
		switch e := a.Effect.(type) {
		case postmenu.SetTool:
			return "tool", string(e.Tool)
		case postmenu.CopyLink:
			return "copy", e.URL
		}
	}
	return "none", ""
}

// MenuTable writes the menu as an aligned table.
func MenuTable(w io.Writer, menu postmenu.Menu) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "SECTION\tID\tLABEL\tACTION\tTARGET")
	fmt.Fprintln(tw, "-------\t--\t-----\t------\t------")

	rows := Entries(menu)
	if len(rows) == 0 {
		fmt.Fprintln(tw, "No entries")
	}
	for _, r := range rows {
		target := r.Target
		if target == "" {
			target = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Section, r.ID, r.Label, r.Action, target)
	}
	return tw.Flush()
}

// MenuJSON writes the menu in JSON format.
func MenuJSON(w io.Writer, postID string, menu postmenu.Menu) error {
	rows := Entries(menu)
	output := struct {
		PostID  string         `json:"post_id"`
		Entries []EntryDisplay `json:"entries"`
		Count   int            `json:"count"`
	}{
		PostID:  postID,
		Entries: rows,
		Count:   len(rows),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
