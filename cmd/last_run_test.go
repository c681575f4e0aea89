package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gotracer.dev/pkg/gotracer/internal/domain"
	domainmocks "gotracer.dev/pkg/gotracer/internal/domain/mocks"
	m "gotracer.dev/pkg/gotracer/internal/model"
)

func TestLastRunCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newLastRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().ShowLastRun(mock.Anything, domain.LastRunArgs{CachePath: m.Path(defaultCachePath)}).Return(nil).Once()

	cmd.SetArgs([]string{"last-run"})
	require.NoError(t, cmd.Execute())
}

func TestLastRunCmd_RejectsArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newLastRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"last-run", "extra"})
	require.Error(t, cmd.Execute())
}
