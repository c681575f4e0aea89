package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotracer.dev/pkg/gotracer/internal/adapter"
)

func TestRootCmd_Help(t *testing.T) {
	cmd := newRootCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "gotracer")
	assert.Contains(t, out.String(), "--cache-path")
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"run", "affected", "last-run", "init", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()

	cachePathFlag := cmd.PersistentFlags().Lookup(cachePathFlagName)
	require.NotNil(t, cachePathFlag)
	assert.Equal(t, "c", cachePathFlag.Shorthand)
	assert.Equal(t, defaultCachePath, cachePathFlag.DefValue)

	for _, name := range []string{noCacheFlagName, serializerFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestCurrentWorkflow_UnknownSerializer(t *testing.T) {
	useWorkflow(t, nil)
	t.Setenv("GOTRACER_SERIALIZER", "msgpack")

	_, err := currentWorkflow(newRootCmd())
	require.ErrorIs(t, err, adapter.ErrUnknownSerializer)
	assert.Nil(t, workflow)
}

func TestCurrentWorkflow_BuildsOnce(t *testing.T) {
	useWorkflow(t, nil)

	first, err := currentWorkflow(newRootCmd())
	require.NoError(t, err)

	second, err := currentWorkflow(newRootCmd())
	require.NoError(t, err)

	assert.Same(t, first, second)
}
