package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

const devNull = "/dev/null"

// ChangeDetector compares the files recorded by the previous snapshot with
// the working tree.
type ChangeDetector interface {
	DetectChanges(ctx context.Context, root m.Path, known map[string]m.SourceFile) (m.FileChanges, error)
}

// HashChangeDetector flags files whose SHA-256 differs from the recorded one.
type HashChangeDetector struct {
	fs SourceFSAdapter
}

// NewHashChangeDetector creates a detector hashing through fs.
func NewHashChangeDetector(fs SourceFSAdapter) *HashChangeDetector {
	return &HashChangeDetector{fs: fs}
}

// DetectChanges implements ChangeDetector.
func (d *HashChangeDetector) DetectChanges(ctx context.Context, root m.Path, known map[string]m.SourceFile) (m.FileChanges, error) {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}

	sort.Strings(names)

	changes := m.FileChanges{}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return m.FileChanges{}, err
		}

		hash, err := d.fs.HashFile(m.Path(filepath.Join(string(root), filepath.FromSlash(name))))

		switch {
		case errors.Is(err, os.ErrNotExist):
			changes.Deleted = append(changes.Deleted, name)
		case err != nil:
			return m.FileChanges{}, fmt.Errorf("hash %s: %w", name, err)
		case hash != known[name].Hash:
			changes.Modified = append(changes.Modified, name)
		}
	}

	slog.Debug("detected file changes", "modified", len(changes.Modified), "deleted", len(changes.Deleted))

	return changes, nil
}

// DiffChangeDetector reads changed files from a unified diff, as produced by
// git diff.
type DiffChangeDetector struct{}

// NewDiffChangeDetector creates a DiffChangeDetector.
func NewDiffChangeDetector() *DiffChangeDetector {
	return &DiffChangeDetector{}
}

// ParseDiff lists the files a diff modifies or deletes. A rename deletes the
// original path and modifies the new one.
func (d *DiffChangeDetector) ParseDiff(r io.Reader) (m.FileChanges, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return m.FileChanges{}, fmt.Errorf("read diff: %w", err)
	}

	fileDiffs, err := diff.ParseMultiFileDiff(data)
	if err != nil {
		return m.FileChanges{}, fmt.Errorf("parse diff: %w", err)
	}

	modified := make(map[string]struct{})
	deleted := make(map[string]struct{})

	for _, fileDiff := range fileDiffs {
		origName := trimDiffPrefix(fileDiff.OrigName, "a/")
		newName := trimDiffPrefix(fileDiff.NewName, "b/")

		switch {
		case newName == devNull:
			deleted[origName] = struct{}{}
		case origName != devNull && origName != newName:
			deleted[origName] = struct{}{}
			modified[newName] = struct{}{}
		default:
			modified[newName] = struct{}{}
		}
	}

	return m.FileChanges{Modified: sortedKeys(modified), Deleted: sortedKeys(deleted)}, nil
}

func trimDiffPrefix(name, prefix string) string {
	if name == devNull {
		return name
	}

	return strings.TrimPrefix(name, prefix)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
