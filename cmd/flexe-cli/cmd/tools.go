package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nfrund/flexe/internal/postmenu"
	"github.com/nfrund/flexe/internal/posttools"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the post tools",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "TAG\tTITLE")
			fmt.Fprintln(w, "---\t-----")
			for _, t := range postmenu.Tools {
				fmt.Fprintf(w, "%s\t%s\n", t, t.Title())
			}
		},
	}
}

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List the events published by the tool service",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "TOPIC\tDESCRIPTION")
			fmt.Fprintln(w, "-----\t-----------")
			for _, e := range posttools.Events() {
				fmt.Fprintf(w, "%s\t%s\n", e.Name(), e.Description())
			}
		},
	}
}
