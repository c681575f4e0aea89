package domain

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// Reporter is the aggregation context for one run. Every event handler goes
// through it; each method is a short critical section under one lock, so
// workers may call it concurrently.
type Reporter struct {
	mu sync.Mutex

	examples *ExampleRegistry
	files    *FileRegistry
	coverage *CoverageAggregator

	now func() time.Time
	pid int
}

// ReporterOption customizes a Reporter.
type ReporterOption func(*Reporter)

// WithClock overrides the clock used for snapshot timestamps.
func WithClock(now func() time.Time) ReporterOption {
	return func(r *Reporter) {
		r.now = now
	}
}

// WithPID overrides the process id recorded in the run summary.
func WithPID(pid int) ReporterOption {
	return func(r *Reporter) {
		r.pid = pid
	}
}

// NewReporter creates the context object for a new run.
func NewReporter(options ...ReporterOption) *Reporter {
	r := &Reporter{
		examples: NewExampleRegistry(),
		files:    NewFileRegistry(),
		coverage: NewCoverageAggregator(),
		now:      time.Now,
		pid:      os.Getpid(),
	}

	for _, option := range options {
		option(r)
	}

	return r
}

func (r *Reporter) RegisterExample(example m.Example) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.examples.Register(example)
}

func (r *Reporter) FinalizeDuplicates() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.examples.FinalizeDuplicates()
}

func (r *Reporter) RecordOutcome(id m.ExampleID, kind m.Outcome, result m.ExecutionResult) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.examples.RecordOutcome(id, kind, result)
}

// RecordCoverage stores the files an example touched. Duplicates are ignored.
func (r *Reporter) RecordCoverage(id m.ExampleID, files map[string]m.FileCoverage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.examples.IsDuplicate(id) {
		return
	}

	r.coverage.RecordExample(id, files)
}

func (r *Reporter) RegisterPossiblyFlaky(id m.ExampleID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.examples.RegisterPossiblyFlaky(id)
}

func (r *Reporter) RegisterFlaky(id m.ExampleID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.examples.RegisterFlaky(id)
}

func (r *Reporter) FinalizeInterrupted() []m.ExampleID {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.examples.FinalizeInterrupted()
}

func (r *Reporter) RegisterDeletedExamples(seen map[m.ExampleID]m.SeenExample) []m.ExampleID {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.examples.RegisterDeletedExamples(seen, r.files)
}

func (r *Reporter) RegisterSourceFile(file m.SourceFile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.files.Register(file)
}

func (r *Reporter) ApplyFileChanges(changes m.FileChanges) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.files.Apply(changes)
}

func (r *Reporter) IsFileChanged(fileName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.files.IsChanged(fileName)
}

func (r *Reporter) Duplicates() map[m.ExampleID][]m.Example {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.examples.Duplicates()
}

func (r *Reporter) IsDuplicate(id m.ExampleID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.examples.IsDuplicate(id)
}

func (r *Reporter) Failed() []m.ExampleID {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.examples.Failed()
}

func (r *Reporter) Example(id m.ExampleID) (m.Example, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.examples.Example(id)
}

// TouchedFiles returns every file referenced by coverage or by an example's
// own source location, in ascending order.
func (r *Reporter) TouchedFiles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{})

	for _, id := range r.coverage.Examples() {
		for _, name := range r.coverage.Files(id) {
			seen[name] = struct{}{}
		}
	}

	for _, example := range r.examples.all {
		seen[example.FileName] = struct{}{}
		seen[example.RerunFileName] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		if name != "" {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// Snapshot derives the dependency graph and freezes every report of the run.
func (r *Reporter) Snapshot(invocationID string) (m.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	allExamples := r.examples.AllExamples()

	runID, err := RunID(m.SortedIDs(allExamples))
	if err != nil {
		return m.Snapshot{}, fmt.Errorf("snapshot: %w", err)
	}

	graph := BuildDependencyGraph(r.coverage)

	// Examples that finished without touching any tracked file still get an
	// entry, so the next run knows their dependencies are known to be empty.
	for id, example := range allExamples {
		if example.ExecutionResult != nil {
			graph.getOrCreate(id)
		}
	}

	reverse := graph.BuildReverseReport(allExamples, r.examples.IsInterrupted)
	timestamp := r.now().UTC()
	skipped := len(r.examples.skipped)

	return m.Snapshot{
		RunID:             runID,
		Timestamp:         timestamp,
		AllExamples:       allExamples,
		FlakyExamples:     r.examples.Flaky(),
		FailedExamples:    r.examples.Failed(),
		PendingExamples:   r.examples.Pending(),
		AllFiles:          r.files.Files(),
		Dependency:        graph.Forward(),
		ReverseDependency: reverse,
		ExamplesCoverage:  r.coverage.Report(),
		LastRun: m.LastRun{
			RunID:               runID,
			Timestamp:           timestamp,
			InvocationID:        invocationID,
			PID:                 r.pid,
			ActualCount:         r.examples.Registrations(),
			ExampleCount:        r.examples.Registrations() - skipped,
			DuplicateExamples:   r.examples.DuplicateCount(),
			InterruptedExamples: len(r.examples.interrupted),
			FailedExamples:      len(r.examples.failed),
			SkippedExamples:     skipped,
			PendingExamples:     len(r.examples.pending),
			FlakyExamples:       len(r.examples.flaky),
		},
	}, nil
}
