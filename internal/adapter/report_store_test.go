package adapter

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	for _, serializer := range []Serializer{JSONSerializer{}, YAMLSerializer{}} {
		t.Run(serializer.Extension(), func(t *testing.T) {
			root := m.Path(filepath.Join(t.TempDir(), ".gotracer-cache"))
			store := NewReportStore(serializer)
			snapshot := sampleSnapshot()

			dir, err := store.Save(context.Background(), root, snapshot)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(string(root), "run-1"), string(dir))

			for _, name := range []string{
				AllExamplesReport, FlakyExamplesReport, FailedExamplesReport, PendingExamplesReport,
				AllFilesReport, DependencyReport, ReverseDependencyReport, ExamplesCoverageReport,
			} {
				assert.FileExists(t, filepath.Join(string(dir), name+"."+serializer.Extension()))
			}

			assert.FileExists(t, filepath.Join(string(root), LastRunReport+"."+serializer.Extension()))

			lastRun, err := store.LoadLastRun(context.Background(), root)
			require.NoError(t, err)
			assert.Equal(t, snapshot.LastRun, lastRun)

			loaded, err := store.LoadSnapshot(context.Background(), root, lastRun.RunID)
			require.NoError(t, err)

			snapshot.LastRun = m.LastRun{}
			assert.Equal(t, snapshot, loaded)
		})
	}
}

func TestLocalReportStore_SaveWritesEmptyListsForNilSets(t *testing.T) {
	root := m.Path(t.TempDir())
	store := NewReportStore(JSONSerializer{})

	snapshot := sampleSnapshot()
	snapshot.FlakyExamples = nil
	snapshot.PendingExamples = nil

	dir, err := store.Save(context.Background(), root, snapshot)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(string(dir), FlakyExamplesReport+".json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestLocalReportStore_SaveReplacesPreviousRun(t *testing.T) {
	root := m.Path(t.TempDir())
	store := NewReportStore(JSONSerializer{})

	first := sampleSnapshot()
	_, err := store.Save(context.Background(), root, first)
	require.NoError(t, err)

	second := sampleSnapshot()
	second.RunID = "run-2"
	second.LastRun.RunID = "run-2"
	_, err = store.Save(context.Background(), root, second)
	require.NoError(t, err)

	lastRun, err := store.LoadLastRun(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, "run-2", lastRun.RunID)

	// older snapshot directories are kept
	assert.DirExists(t, filepath.Join(string(root), "run-1"))

	entries, err := os.ReadDir(string(root))
	require.NoError(t, err)

	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp")
	}
}

func TestLocalReportStore_LoadLastRunMissing(t *testing.T) {
	store := NewReportStore(JSONSerializer{})

	_, err := store.LoadLastRun(context.Background(), m.Path(t.TempDir()))
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestLocalReportStore_LoadLastRunWithoutRunID(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "last_run.json"), `{"pid": 12}`)

	_, err := NewReportStore(JSONSerializer{}).LoadLastRun(context.Background(), m.Path(root))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSnapshot)
}

func TestLocalReportStore_LoadSnapshotMissingArtifact(t *testing.T) {
	root := m.Path(t.TempDir())
	store := NewReportStore(JSONSerializer{})

	dir, err := store.Save(context.Background(), root, sampleSnapshot())
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(string(dir), DependencyReport+".json")))

	_, err = store.LoadSnapshot(context.Background(), root, "run-1")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalReportStore_SaveFailureLeavesLastRunUntouched(t *testing.T) {
	root := t.TempDir()
	store := NewReportStore(JSONSerializer{})

	_, err := store.Save(context.Background(), m.Path(root), sampleSnapshot())
	require.NoError(t, err)

	broken := sampleSnapshot()
	broken.RunID = "run-2"
	broken.LastRun.RunID = "run-2"
	// NaN cannot be encoded as JSON
	broken.AllExamples["e1"].ExecutionResult.RunTime = math.NaN()

	_, err = store.Save(context.Background(), m.Path(root), broken)
	require.Error(t, err)

	lastRun, err := store.LoadLastRun(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.Equal(t, "run-1", lastRun.RunID)
	assert.NoDirExists(t, filepath.Join(root, "run-2"))
}

func TestLocalReportStore_SaveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := t.TempDir()

	_, err := NewReportStore(JSONSerializer{}).Save(ctx, m.Path(root), sampleSnapshot())
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(root, "last_run.json"))
}
