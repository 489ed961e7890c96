package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the prioritize command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prioritize",
		Short: "Rank task lists from the command line",
		Long: `prioritize scores tasks by urgency, importance, effort and dependency
impact, using the same engine and JSON format as the HTTP API.`,
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd())
	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
