package cli

import (
	"github.com/spf13/cobra"
)

// AddCommands registers every uv-platform subcommand on root.
func AddCommands(root *cobra.Command) {
	root.AddCommand(
		NewDetectCmd(),
		NewParseCmd(),
		NewSortCmd(),
		NewSupportsCmd(),
		NewLibcCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)
}
