package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gotracer.dev/pkg/gotracer/internal/domain"
	domainmocks "gotracer.dev/pkg/gotracer/internal/domain/mocks"
	m "gotracer.dev/pkg/gotracer/internal/model"
)

func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf

	t.Cleanup(func() { workflow = original })
}

func TestRunCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Threads == 1 &&
			args.UseCache &&
			args.CachePath == m.Path(".gotracer-cache") &&
			args.Timeout == 10*time.Minute &&
			args.Diff == nil &&
			!args.Flaky.Enabled() &&
			len(args.Patterns) == 0
	})).Return(nil).Once()

	cmd.SetArgs([]string{"run"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_Flags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Threads == 4 &&
			!args.UseCache &&
			args.CachePath == m.Path("/tmp/cache") &&
			args.Timeout == 30*time.Second &&
			args.Flaky == domain.FlakyPolicy{Retries: 2, Confirmations: 1} &&
			assert.ObjectsAreEqual([]string{"./cmd", "./internal/..."}, args.Patterns)
	})).Return(nil).Once()

	cmd.SetArgs([]string{
		"run", "-p", "4", "--no-cache", "-c", "/tmp/cache", "--timeout", "30s",
		"--flaky-retries", "2", "--flaky-confirmations", "1",
		"./cmd", "./internal/...",
	})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_DiffFromStdin(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("diff body"))

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, args domain.RunArgs) error {
			data, err := io.ReadAll(args.Diff)
			if err != nil {
				return err
			}

			assert.Equal(t, "diff body", string(data))

			return nil
		}).Once()

	cmd.SetArgs([]string{"run", "--diff", "-"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_DiffFileMissing(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"run", "--diff", filepath.Join(t.TempDir(), "missing.diff")})
	err := cmd.Execute()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunCmd_PropagatesFailures(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.ErrExamplesFailed).Once()

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	assert.True(t, errors.Is(err, domain.ErrExamplesFailed))
}

func TestOpenDiff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changes.diff")
	require.NoError(t, os.WriteFile(path, []byte("patch"), 0o600))

	reader, closeDiff, err := openDiff(newRunCmd(), path)
	require.NoError(t, err)
	defer closeDiff()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "patch", string(data))

	reader, closeDiff, err = openDiff(newRunCmd(), "")
	require.NoError(t, err)
	closeDiff()
	assert.Nil(t, reader)
}
