package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xcinfo/internal/app"
	"go.trai.ch/xcinfo/internal/core/domain"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [archives...]",
		Short: "Inspect zipped XCFramework bundles",
		Long: "Inspect reads each zipped XCFramework and prints its framework, library, Swift\n" +
			"interface and privacy manifest metadata. Several archives are reported as a list\n" +
			"in argument order.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, _ := cmd.Flags().GetStringSlice("file")
			if len(paths) > 0 && len(args) > 0 {
				return domain.ErrArchiveArgsConflict
			}
			if len(paths) == 0 {
				paths = args
			}
			if len(paths) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			diagnostics, _ := cmd.Flags().GetBool("diagnostics")
			verbose, _ := cmd.Flags().GetBool("verbose")
			logJSON, _ := cmd.Flags().GetBool("log-json")

			return c.app.Inspect(cmd.Context(), paths, app.InspectOptions{
				Format:      format,
				Output:      output,
				NoCache:     noCache,
				Diagnostics: diagnostics,
				Verbose:     verbose,
				LogJSON:     logJSON,
			})
		},
	}
	cmd.Flags().StringSliceP("file", "f", nil, "Archive to inspect (repeatable, alternative to positional arguments)")
	cmd.Flags().StringP("format", "t", "", "Output format: json, yaml or text (default from xcinfo.yaml, else json)")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the report cache")
	cmd.Flags().Bool("diagnostics", false, "Include skipped records in the report")
	cmd.Flags().BoolP("verbose", "v", false, "Log the duration of each extraction stage")
	cmd.Flags().Bool("log-json", false, "Write logs as JSON")
	return cmd
}
