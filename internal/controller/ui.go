// Package controller provides output adapters for displaying tracer runs.
package controller

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// UI defines the interface for reporting a run to the user.
// Implementations must be safe for concurrent use: example results are
// reported from worker goroutines.
type UI interface {
	// Start begins live progress reporting; Close ends it. Output outside
	// Start/Close is printed directly.
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayDuplicates(ctx context.Context, duplicates map[m.ExampleID][]m.Example)
	DisplayRunPlan(ctx context.Context, run, skip, threads int)
	DisplayExampleResult(ctx context.Context, example m.Example, result m.ExecutionResult)
	DisplayFlaky(ctx context.Context, example m.Example, confirmed bool)
	DisplayInterrupted(ctx context.Context, count int)
	DisplayDeleted(ctx context.Context, count int)
	DisplaySnapshotWritten(ctx context.Context, dir m.Path)
	DisplaySummary(ctx context.Context, lastRun m.LastRun, elapsed time.Duration)
	DisplayAffected(ctx context.Context, files []string, entries []m.ReverseDependencyEntry)
}

// NewUI picks the interactive progress view on a terminal and plain output
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
