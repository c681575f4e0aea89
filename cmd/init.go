package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const initForceFlagName = "force"

// configTemplate lists the keys init writes, in file order, with the comment
// placed above each one.
var configTemplate = []struct {
	key     string
	comment string
}{
	{configVersionKey, "config schema version"},
	{cachePathConfigKey, "directory holding one snapshot per run and last_run"},
	{serializerConfigKey, "snapshot encoding: json or yaml"},
	{noCacheFlagName, "ignore the previous snapshot and run every example"},
	{runParallelConfigKey, "examples executed at once"},
	{runTimeoutConfigKey, "go test -timeout for a single example"},
	{flakyRetriesConfigKey, "re-runs of a failed example looking for a pass, 0 disables flaky detection"},
	{flakyConfirmationsConfigKey, "re-runs confirming a possibly flaky example"},
	{logFilenameKey, "rotating log file"},
	{logLevelKey, "slog level: debug, info, warn, error or a number"},
	{logVerboseKey, "log at debug level"},
	{logMaxSizeKey, "megabytes before the log rotates"},
	{logMaxBackupsKey, "rotated files kept"},
	{logMaxAgeKey, "days rotated files are kept"},
	{logCompressKey, "gzip rotated files"},
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default gotracer.yaml configuration file",
		Long: `Create a gotracer.yaml in the current working directory with every tracer
setting, its current value and a short description, ready to be edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			data, err := renderConfig()
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}

			if err := writeConfigFile(targetPath, data, force); err != nil {
				return err
			}

			cmd.Printf("Wrote %s\n", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, initForceFlagName, false, "overwrite an existing config file")

	return cmd
}

// renderConfig encodes the current settings as commented YAML. Dotted keys
// become nested sections.
func renderConfig() ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	for _, entry := range configTemplate {
		parent := doc
		parts := strings.Split(entry.key, ".")

		for _, section := range parts[:len(parts)-1] {
			parent = sectionNode(parent, section)
		}

		var value yaml.Node
		if err := value.Encode(viper.Get(entry.key)); err != nil {
			return nil, fmt.Errorf("encode %s: %w", entry.key, err)
		}

		key := &yaml.Node{Kind: yaml.ScalarNode, Value: parts[len(parts)-1], HeadComment: entry.comment}
		parent.Content = append(parent.Content, key, &value)
	}

	return yaml.Marshal(doc)
}

func sectionNode(parent *yaml.Node, name string) *yaml.Node {
	for i := 0; i+1 < len(parent.Content); i += 2 {
		if parent.Content[i].Value == name {
			return parent.Content[i+1]
		}
	}

	section := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, section)

	return section
}

func writeConfigFile(path string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	// #nosec G304 - fixed config file name in the working directory
	file, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("config file %s already exists, use --%s to overwrite it", path, initForceFlagName)
	}

	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return file.Close()
}

func init() {
	rootCmd.AddCommand(initCmd)
}
