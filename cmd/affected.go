package cmd

import (
	"github.com/spf13/cobra"

	"gotracer.dev/pkg/gotracer/internal/domain"
)

// affectedCmd represents the affected command.
var affectedCmd = newAffectedCmd()

func newAffectedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "affected <files...>",
		Short: "List the test files depending on the given files",
		Long: `Look the given files up in the reverse dependency report of the latest
snapshot and list the test files whose tests execute them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Affected(cmd.Context(), domain.AffectedArgs{
				CachePath: cachePath(),
				Files:     args,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(affectedCmd)
}
