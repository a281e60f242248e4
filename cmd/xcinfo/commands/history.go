package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent inspections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return c.app.History(cmd.Context(), cmd.OutOrStdout(), limit)
		},
	}
	cmd.Flags().IntP("limit", "l", 20, "Number of inspections to show (0 for all)")
	return cmd
}
