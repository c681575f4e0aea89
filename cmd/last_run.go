package cmd

import (
	"github.com/spf13/cobra"

	"gotracer.dev/pkg/gotracer/internal/domain"
)

// lastRunCmd represents the last-run command.
var lastRunCmd = newLastRunCmd()

func newLastRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last-run",
		Short: "Show the summary of the latest run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.ShowLastRun(cmd.Context(), domain.LastRunArgs{CachePath: cachePath()})
		},
	}
}

func init() {
	rootCmd.AddCommand(lastRunCmd)
}
