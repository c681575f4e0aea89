package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gotracer.dev/pkg/gotracer/internal/domain"
)

const runLongDescription = `Run the tests of the given packages (default: ./...), skipping the ones
whose recorded dependencies did not change since the previous snapshot.

` + packagePatternsHelp

var runParallelFlag int
var runTimeoutFlag time.Duration
var runDiffFlag string
var flakyRetriesFlag int
var flakyConfirmationsFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [packages...]",
		Short: "Run the tests affected by changes and record their dependencies",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			wf, err := currentWorkflow(cmd)
			if err != nil {
				return err
			}

			diff, closeDiff, err := openDiff(cmd, runDiffFlag)
			if err != nil {
				return err
			}
			defer closeDiff()

			return wf.Run(ctx, domain.RunArgs{
				Patterns:  args,
				CachePath: cachePath(),
				UseCache:  !viper.GetBool(noCacheFlagName),
				Threads:   viper.GetInt(runParallelConfigKey),
				Timeout:   viper.GetDuration(runTimeoutConfigKey),
				Diff:      diff,
				Flaky: domain.FlakyPolicy{
					Retries:       viper.GetInt(flakyRetriesConfigKey),
					Confirmations: viper.GetInt(flakyConfirmationsConfigKey),
				},
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", defaultRunParallel, "number of tests run in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().DurationVar(&runTimeoutFlag, runTimeoutFlagName, defaultRunTimeout, "timeout of a single test run")
	bindFlagToConfig(cmd.Flags().Lookup(runTimeoutFlagName), runTimeoutConfigKey)

	cmd.Flags().IntVar(&flakyRetriesFlag, flakyRetriesFlagName, defaultFlakyRetries, "isolated re-runs of a failed test looking for a pass (0 disables)")
	bindFlagToConfig(cmd.Flags().Lookup(flakyRetriesFlagName), flakyRetriesConfigKey)

	cmd.Flags().IntVar(&flakyConfirmationsFlag, flakyConfirmationsFlagName, defaultFlakyConfirmations, "extra re-runs after a passing retry to confirm a flaky test")
	bindFlagToConfig(cmd.Flags().Lookup(flakyConfirmationsFlagName), flakyConfirmationsConfigKey)

	cmd.Flags().StringVar(&runDiffFlag, runDiffFlagName, "", "unified diff marking changed files (- reads stdin)")
}

// openDiff opens the diff named by the --diff flag. An empty name yields no reader.
func openDiff(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	switch name {
	case "":
		return nil, func() {}, nil
	case "-":
		return cmd.InOrStdin(), func() {}, nil
	}

	// #nosec G304 - the diff path is supplied by the user
	file, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open diff: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}
