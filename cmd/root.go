// Package cmd provides the root command and CLI setup for gotracer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gotracer.dev/pkg/gotracer/internal/adapter"
	"gotracer.dev/pkg/gotracer/internal/controller"
	"gotracer.dev/pkg/gotracer/internal/domain"
	m "gotracer.dev/pkg/gotracer/internal/model"
)

// workflow is assembled on first use, once the serializer is known.
var workflow domain.Workflow

var cachePathFlag string

// noCacheFlag disables incremental runs when set.
var noCacheFlag bool

var serializerFlag string
var verboseFlag bool

const packagePatternsHelp = `Supports go package patterns:
  - ./...          every package of the current module
  - ./pkg/...      every package below pkg
  - ./cmd ./pkg    several packages`

const rootLongDescription = `gotracer runs the tests of a Go module one by one, records which source
files each test executes and stores the result as a snapshot. The next run
only executes tests whose dependencies changed.

` + packagePatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gotracer",
		Short:         "Dependency-tracing incremental test runner for Go",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&cachePathFlag, cachePathFlagName, "c", defaultCachePath, "directory holding the snapshots")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(cachePathFlagName), cachePathConfigKey)

	cmd.PersistentFlags().BoolVar(&noCacheFlag, noCacheFlagName, defaultNoCache, "ignore the previous snapshot and run every test")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noCacheFlagName), noCacheFlagName)

	cmd.PersistentFlags().StringVar(&serializerFlag, serializerFlagName, defaultSerializer, "snapshot encoding (json or yaml)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(serializerFlagName), serializerConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// currentWorkflow returns the workflow, assembling it from the configured
// adapters on first use.
func currentWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	serializer, err := adapter.NewSerializer(viper.GetString(serializerConfigKey))
	if err != nil {
		return nil, err
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter()

	workflow = domain.NewWorkflow(
		fsAdapter,
		adapter.NewReportStore(serializer),
		adapter.NewLocalTestRunnerAdapter(),
		adapter.NewLocalGoFileAdapter(fsAdapter),
		adapter.NewProfileCoverageAdapter(),
		adapter.NewHashChangeDetector(fsAdapter),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
	)

	return workflow, nil
}

func cachePath() m.Path {
	return m.Path(viper.GetString(cachePathConfigKey))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
