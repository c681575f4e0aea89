package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// ErrNoSnapshot is returned when the cache root holds no last_run summary.
var ErrNoSnapshot = errors.New("no previous snapshot")

// Artifact names inside a snapshot directory.
const (
	AllExamplesReport       = "all_examples"
	FlakyExamplesReport     = "flaky_examples"
	FailedExamplesReport    = "failed_examples"
	PendingExamplesReport   = "pending_examples"
	AllFilesReport          = "all_files"
	DependencyReport        = "dependency"
	ReverseDependencyReport = "reverse_dependency"
	ExamplesCoverageReport  = "examples_coverage"
	LastRunReport           = "last_run"
)

// SnapshotStore persists run snapshots and loads the previous one.
type SnapshotStore interface {
	// Save writes every report of the snapshot under root/<run id> and
	// replaces root/last_run. It returns the snapshot directory.
	Save(ctx context.Context, root m.Path, snapshot m.Snapshot) (m.Path, error)
	LoadLastRun(ctx context.Context, root m.Path) (m.LastRun, error)
	LoadSnapshot(ctx context.Context, root m.Path, runID string) (m.Snapshot, error)
}

// LocalReportStore stores snapshots on the local filesystem.
type LocalReportStore struct {
	serializer Serializer
}

// NewReportStore creates a LocalReportStore using the given codec.
func NewReportStore(serializer Serializer) *LocalReportStore {
	return &LocalReportStore{serializer: serializer}
}

type artifact struct {
	name  string
	value any
}

func snapshotArtifacts(snapshot m.Snapshot) []artifact {
	return []artifact{
		{AllExamplesReport, snapshot.AllExamples},
		{FlakyExamplesReport, nonNilIDs(snapshot.FlakyExamples)},
		{FailedExamplesReport, nonNilIDs(snapshot.FailedExamples)},
		{PendingExamplesReport, nonNilIDs(snapshot.PendingExamples)},
		{AllFilesReport, snapshot.AllFiles},
		{DependencyReport, snapshot.Dependency},
		{ReverseDependencyReport, snapshot.ReverseDependency},
		{ExamplesCoverageReport, snapshot.ExamplesCoverage},
	}
}

func nonNilIDs(ids []m.ExampleID) []m.ExampleID {
	if ids == nil {
		return []m.ExampleID{}
	}

	return ids
}

func (s *LocalReportStore) fileName(dir, report string) string {
	return filepath.Join(dir, report+"."+s.serializer.Extension())
}

// Save implements SnapshotStore. Artifacts are staged in a temporary
// directory and moved into place only when every write succeeded.
func (s *LocalReportStore) Save(ctx context.Context, root m.Path, snapshot m.Snapshot) (m.Path, error) {
	rootDir := string(root)

	if err := os.MkdirAll(rootDir, 0o750); err != nil {
		return "", fmt.Errorf("create cache root: %w", err)
	}

	staging, err := os.MkdirTemp(rootDir, "."+snapshot.RunID+"-*")
	if err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	defer func() {
		_ = os.RemoveAll(staging)
	}()

	group, groupCtx := errgroup.WithContext(ctx)

	for _, a := range snapshotArtifacts(snapshot) {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			return s.writeArtifact(s.fileName(staging, a.name), a.value)
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("failed to write snapshot", "runID", snapshot.RunID, "error", err)
		return "", err
	}

	target := filepath.Join(rootDir, snapshot.RunID)

	if err := os.RemoveAll(target); err != nil {
		return "", fmt.Errorf("replace snapshot dir: %w", err)
	}

	if err := os.Rename(staging, target); err != nil {
		return "", fmt.Errorf("move snapshot into place: %w", err)
	}

	if err := s.writeArtifactAtomic(s.fileName(rootDir, LastRunReport), snapshot.LastRun); err != nil {
		return "", err
	}

	slog.Debug("snapshot written", "dir", target, "encoding", s.serializer.Encoding())

	return m.Path(target), nil
}

func (s *LocalReportStore) writeArtifact(path string, value any) error {
	data, err := s.serializer.Serialize(value)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	return nil
}

func (s *LocalReportStore) writeArtifactAtomic(path string, value any) error {
	tmp := path + ".tmp"

	if err := s.writeArtifact(tmp, value); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}

	return nil
}

// LoadLastRun implements SnapshotStore.
func (s *LocalReportStore) LoadLastRun(ctx context.Context, root m.Path) (m.LastRun, error) {
	var lastRun m.LastRun

	if err := ctx.Err(); err != nil {
		return lastRun, err
	}

	err := s.readArtifact(s.fileName(string(root), LastRunReport), &lastRun)
	if errors.Is(err, os.ErrNotExist) {
		return lastRun, ErrNoSnapshot
	}

	if err != nil {
		return lastRun, err
	}

	if lastRun.RunID == "" {
		return lastRun, fmt.Errorf("%s: missing run_id", LastRunReport)
	}

	return lastRun, nil
}

// LoadSnapshot implements SnapshotStore. The returned snapshot has no
// LastRun; callers attach the summary they loaded it from.
func (s *LocalReportStore) LoadSnapshot(ctx context.Context, root m.Path, runID string) (m.Snapshot, error) {
	snapshot := m.Snapshot{RunID: runID}
	dir := filepath.Join(string(root), runID)

	targets := []artifact{
		{AllExamplesReport, &snapshot.AllExamples},
		{FlakyExamplesReport, &snapshot.FlakyExamples},
		{FailedExamplesReport, &snapshot.FailedExamples},
		{PendingExamplesReport, &snapshot.PendingExamples},
		{AllFilesReport, &snapshot.AllFiles},
		{DependencyReport, &snapshot.Dependency},
		{ReverseDependencyReport, &snapshot.ReverseDependency},
		{ExamplesCoverageReport, &snapshot.ExamplesCoverage},
	}

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return m.Snapshot{}, err
		}

		if err := s.readArtifact(s.fileName(dir, target.name), target.value); err != nil {
			return m.Snapshot{}, fmt.Errorf("load snapshot %s: %w", runID, err)
		}
	}

	return snapshot, nil
}

func (s *LocalReportStore) readArtifact(path string, value any) error {
	// #nosec G304 - path is built from the configured cache root
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := s.serializer.Deserialize(data, value); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return nil
}
