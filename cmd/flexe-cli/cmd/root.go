package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flexe-cli",
		Short: "Flexe CLI tool",
		Long: `Flexe CLI inspects the post action menu without running the server.

Available commands:
  menu       Show the menu a viewer gets for a post, optionally dispatching an entry
  tools      List the post tools an entry can open
  events     List the events published by the tool service
  version    Print the version

Use "flexe-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}
	root.AddCommand(newMenuCmd(), newToolsCmd(), newEventsCmd(), newVersionCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
