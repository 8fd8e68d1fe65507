package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the tax-simulator command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tax-simulator",
		Short:         "Household income tax simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newComputeCmd())
	return root
}
