package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xcinfo/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the report cache and inspection history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, _ := cmd.Flags().GetBool("cache")
			history, _ := cmd.Flags().GetBool("history")

			opts := app.CleanOptions{
				Cache:   cache,
				History: history,
			}
			if !cache && !history {
				// Default behavior: clean everything
				opts.Cache = true
				opts.History = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().Bool("cache", false, "Remove the report cache")
	cmd.Flags().Bool("history", false, "Remove the inspection history")

	return cmd
}
