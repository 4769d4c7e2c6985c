package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nfrund/flexe/cmd/flexe-cli/internal/format"
	"github.com/nfrund/flexe/internal/postmenu"
)

type menuOptions struct {
	owner    bool
	location string
	format   string
	dispatch string
}

func newMenuCmd() *cobra.Command {
	opts := &menuOptions{}
	menuCmd := &cobra.Command{
		Use:   "menu <post-id>",
		Short: "Show the action menu of a post",
		Long: `Show the action menu a viewer gets for a post.

Examples:
  flexe-cli menu 42                         # Menu as seen by a visitor
  flexe-cli menu 42 --owner                 # Menu as seen by the author
  flexe-cli menu 42 --owner --format json   # Machine-readable output
  flexe-cli menu 42 --dispatch copy-link    # Show what selecting an entry does`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.OutOrStdout(), args[0], opts)
		},
	}

	menuCmd.Flags().BoolVar(&opts.owner, "owner", false, "view the menu as the post author")
	menuCmd.Flags().StringVar(&opts.location, "location", "", "page URL used by View Post and Copy Link (default http://localhost:8080/posts/<post-id>)")
	menuCmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format: table or json")
	menuCmd.Flags().StringVar(&opts.dispatch, "dispatch", "", "entry id to dispatch instead of listing the menu")
	return menuCmd
}

func runMenu(w io.Writer, postID string, opts *menuOptions) error {
	location := opts.location
	if location == "" {
		location = "http://localhost:8080/posts/" + postID
	}
	menu := postmenu.Build(postID, postmenu.Viewer{IsOwnProfile: opts.owner}, location)

	if opts.dispatch != "" {
		entry, ok := menu.Find(opts.dispatch)
		if !ok {
			return fmt.Errorf("entry %q is not visible to this viewer", opts.dispatch)
		}
		return postmenu.Dispatch(entry, &printDispatcher{w: w})
	}

	switch opts.format {
	case "json":
		return format.MenuJSON(w, postID, menu)
	case "table":
		return format.MenuTable(w, menu)
	default:
		return fmt.Errorf("invalid format %q: valid formats are table, json", opts.format)
	}
}

// printDispatcher reports each effect on w instead of performing it.
type printDispatcher struct {
	w io.Writer
}

func (d *printDispatcher) Navigate(url string) {
	fmt.Fprintf(d.w, "navigate  %s\n", url)
}

func (d *printDispatcher) SetActiveTool(tool postmenu.Tool) {
	fmt.Fprintf(d.w, "tool      %s\n", tool)
}

func (d *printDispatcher) CopyToClipboard(text string) error {
	_, err := fmt.Fprintf(d.w, "copy      %s\n", text)
	return err
}

func (d *printDispatcher) Notify(message string) {
	fmt.Fprintf(d.w, "notify    %s\n", message)
}
