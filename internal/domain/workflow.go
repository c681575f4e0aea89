package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gotracer.dev/pkg/gotracer/internal/adapter"
	"gotracer.dev/pkg/gotracer/internal/controller"
	m "gotracer.dev/pkg/gotracer/internal/model"
)

// ErrExamplesFailed is returned by Run when the snapshot records failures.
var ErrExamplesFailed = errors.New("examples failed")

// RunArgs contains the arguments for a traced run.
type RunArgs struct {
	WorkDir   m.Path
	Patterns  []string
	CachePath m.Path
	UseCache  bool
	Threads   int
	Timeout   time.Duration
	// Diff optionally supplies a unified diff of the working tree.
	Diff  io.Reader
	Flaky FlakyPolicy
}

// AffectedArgs contains the arguments for querying reverse dependencies.
type AffectedArgs struct {
	WorkDir   m.Path
	CachePath m.Path
	Files     []string
}

// LastRunArgs contains the arguments for showing the latest run summary.
type LastRunArgs struct {
	WorkDir   m.Path
	CachePath m.Path
}

// Workflow defines the tracer's use cases.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Affected(ctx context.Context, args AffectedArgs) error
	ShowLastRun(ctx context.Context, args LastRunArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.SnapshotStore
	adapter.TestRunnerAdapter
	adapter.GoFileAdapter
	adapter.CoverageAdapter
	adapter.ChangeDetector
	controller.UI

	diff            *adapter.DiffChangeDetector
	reporterOptions []ReporterOption
	invocationID    func() string
}

// WorkflowOption customizes a Workflow.
type WorkflowOption func(*workflow)

// WithReporterOptions passes options to the Reporter of every run.
func WithReporterOptions(options ...ReporterOption) WorkflowOption {
	return func(w *workflow) {
		w.reporterOptions = append(w.reporterOptions, options...)
	}
}

// WithInvocationID overrides the generator of invocation ids.
func WithInvocationID(generate func() string) WorkflowOption {
	return func(w *workflow) {
		w.invocationID = generate
	}
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.SnapshotStore,
	testRunner adapter.TestRunnerAdapter,
	goFileAdapter adapter.GoFileAdapter,
	coverageAdapter adapter.CoverageAdapter,
	changeDetector adapter.ChangeDetector,
	ui controller.UI,
	options ...WorkflowOption,
) Workflow {
	w := &workflow{
		SourceFSAdapter:   fsAdapter,
		SnapshotStore:     store,
		TestRunnerAdapter: testRunner,
		GoFileAdapter:     goFileAdapter,
		CoverageAdapter:   coverageAdapter,
		ChangeDetector:    changeDetector,
		UI:                ui,
		diff:              adapter.NewDiffChangeDetector(),
		invocationID:      func() string { return uuid.NewString() },
	}

	for _, option := range options {
		option(w)
	}

	return w
}

// project is the module a run operates on.
type project struct {
	root       m.Path
	modulePath string
	cacheRoot  m.Path
}

func (w *workflow) resolveProject(workDir, cachePath m.Path) (project, error) {
	if workDir == "" {
		workDir = "."
	}

	root, err := w.FindProjectRoot(workDir)
	if err != nil {
		return project{}, fmt.Errorf("find project root: %w", err)
	}

	modulePath, err := w.ModulePath(root)
	if err != nil {
		return project{}, fmt.Errorf("read module path: %w", err)
	}

	cacheRoot := cachePath
	if !filepath.IsAbs(string(cachePath)) {
		cacheRoot = w.JoinPath(string(root), string(cachePath))
	}

	return project{root: root, modulePath: modulePath, cacheRoot: cacheRoot}, nil
}

// Run executes the selected examples, traces the files each one touches and
// writes the snapshot. An interrupted run is still persisted before the
// context error is returned.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	started := time.Now()

	proj, err := w.resolveProject(args.WorkDir, args.CachePath)
	if err != nil {
		return err
	}

	reporter := NewReporter(w.reporterOptions...)

	previous, err := w.loadPrevious(ctx, proj.cacheRoot, args.UseCache)
	if err != nil {
		return err
	}

	if previous != nil {
		if err := w.applyChanges(ctx, proj.root, previous, args.Diff, reporter); err != nil {
			return err
		}
	}

	examples, err := w.discover(ctx, proj, args.Patterns)
	if err != nil {
		return err
	}

	for _, example := range examples {
		reporter.RegisterExample(example)
	}

	reporter.FinalizeDuplicates()
	w.DisplayDuplicates(ctx, reporter.Duplicates())

	selection := NewSelector(previous, ChangeIndexFunc(reporter.IsFileChanged)).Select(examples)
	w.carrySkipped(selection.Skip, previous, reporter)

	// duplicates share an id; one run is enough to surface them
	scheduled := distinctByID(selection.Run)
	skipped := len(distinctByID(selection.Skip))

	threads := max(args.Threads, 1)

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	w.DisplayRunPlan(ctx, len(scheduled), skipped, threads)
	slog.Info("running examples", "run", len(scheduled), "skip", skipped, "threads", threads)

	err = w.runExamples(ctx, proj, scheduled, selection.Reasons, args, threads, reporter)
	w.Close(ctx)

	if err != nil {
		return err
	}

	if interrupted := reporter.FinalizeInterrupted(); len(interrupted) > 0 {
		slog.Warn("examples interrupted", "count", len(interrupted))
		w.DisplayInterrupted(ctx, len(interrupted))
	}

	if previous != nil {
		deleted := reporter.RegisterDeletedExamples(previous.SeenExamples())
		w.DisplayDeleted(ctx, len(deleted))
	}

	if err := w.registerTouchedFiles(proj.root, reporter); err != nil {
		return err
	}

	snapshot, err := reporter.Snapshot(w.invocationID())
	if err != nil {
		return err
	}

	// An interrupted run is persisted too.
	dir, err := w.Save(context.WithoutCancel(ctx), proj.cacheRoot, snapshot)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	w.DisplaySnapshotWritten(ctx, dir)
	w.DisplaySummary(ctx, snapshot.LastRun, time.Since(started))

	if err := ctx.Err(); err != nil {
		return err
	}

	if n := len(snapshot.FailedExamples); n > 0 {
		return fmt.Errorf("%w: %d", ErrExamplesFailed, n)
	}

	return nil
}

func (w *workflow) loadPrevious(ctx context.Context, cacheRoot m.Path, useCache bool) (*m.Snapshot, error) {
	if !useCache {
		return nil, nil
	}

	lastRun, err := w.LoadLastRun(ctx, cacheRoot)
	if errors.Is(err, adapter.ErrNoSnapshot) {
		slog.Info("no previous snapshot", "cache", cacheRoot)
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("load last run: %w", err)
	}

	snapshot, err := w.LoadSnapshot(ctx, cacheRoot, lastRun.RunID)
	if err != nil {
		return nil, err
	}

	snapshot.LastRun = lastRun

	return &snapshot, nil
}

func (w *workflow) applyChanges(ctx context.Context, root m.Path, previous *m.Snapshot, diff io.Reader, reporter *Reporter) error {
	changes, err := w.DetectChanges(ctx, root, previous.AllFiles)
	if err != nil {
		return fmt.Errorf("detect changes: %w", err)
	}

	reporter.ApplyFileChanges(changes)

	if diff == nil {
		return nil
	}

	diffChanges, err := w.diff.ParseDiff(diff)
	if err != nil {
		return err
	}

	reporter.ApplyFileChanges(diffChanges)

	return nil
}

func (w *workflow) discover(ctx context.Context, proj project, patterns []string) ([]m.Example, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	packages, err := w.ListPackages(ctx, proj.root, patterns)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	var examples []m.Example

	for _, pkg := range packages {
		tests, err := w.LocateTests(ctx, pkg)
		if err != nil {
			return nil, err
		}

		for _, test := range tests {
			rel, err := w.RelPath(proj.root, test.File)
			if err != nil {
				return nil, fmt.Errorf("relative path of %s: %w", test.File, err)
			}

			examples = append(examples, m.Example{
				ID:              ExampleIDFor(pkg.ImportPath, test.Name),
				FullDescription: pkg.ImportPath + "." + test.Name,
				FileName:        string(rel),
				RerunFileName:   string(rel),
				RerunLineNumber: test.Line,
				Package:         pkg.ImportPath,
				TestName:        test.Name,
			})
		}
	}

	slog.Debug("discovered examples", "packages", len(packages), "examples", len(examples))

	return examples, nil
}

// carrySkipped stamps unselected examples as skipped and keeps the coverage
// they recorded last time.
func (w *workflow) carrySkipped(skipped []m.Example, previous *m.Snapshot, reporter *Reporter) {
	for _, example := range skipped {
		cached := previous.AllExamples[example.ID]

		result := m.ExecutionResult{}
		if cached.ExecutionResult != nil {
			result = *cached.ExecutionResult
			result.Status = ""
		}

		if reporter.RecordOutcome(example.ID, m.Skipped, result) {
			reporter.RecordCoverage(example.ID, previous.ExamplesCoverage[example.ID])
		}
	}
}

// distinctByID keeps the first example of every id, preserving order.
func distinctByID(examples []m.Example) []m.Example {
	seen := newIDSet()
	out := make([]m.Example, 0, len(examples))

	for _, example := range examples {
		if seen.has(example.ID) {
			continue
		}

		seen.add(example.ID)
		out = append(out, example)
	}

	return out
}

func (w *workflow) runExamples(ctx context.Context, proj project, examples []m.Example, reasons map[m.ExampleID]string, args RunArgs, threads int, reporter *Reporter) error {
	var group errgroup.Group

	group.SetLimit(threads)

	for _, example := range examples {
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			slog.Debug("running example", "example", example.FullDescription, "reason", reasons[example.ID])

			exec, err := w.execute(ctx, proj, example, args.Timeout, true)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}

				return err
			}

			if !exec.finished {
				return nil
			}

			if !reporter.RecordOutcome(example.ID, exec.outcome, exec.result) {
				return nil
			}

			reporter.RecordCoverage(example.ID, exec.coverage)
			w.DisplayExampleResult(ctx, example, exec.result)

			if exec.outcome == m.Failed && args.Flaky.Enabled() {
				w.checkFlaky(ctx, proj, example, args, reporter)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("run examples: %w", err)
	}

	return nil
}

func (w *workflow) checkFlaky(ctx context.Context, proj project, example m.Example, args RunArgs, reporter *Reporter) {
	verdict, err := args.Flaky.Evaluate(ctx, func(ctx context.Context) (m.Outcome, error) {
		exec, err := w.execute(ctx, proj, example, args.Timeout, false)
		if err != nil {
			return m.Failed, err
		}

		if !exec.finished {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return m.Failed, ctxErr
			}

			return m.Failed, nil
		}

		return exec.outcome, nil
	})
	if err != nil {
		slog.Warn("flaky re-run aborted", "example", example.FullDescription, "error", err)
	}

	switch verdict {
	case PossiblyFlaky:
		reporter.RegisterPossiblyFlaky(example.ID)
		w.DisplayFlaky(ctx, example, false)
	case Flaky:
		reporter.RegisterFlaky(example.ID)
		w.DisplayFlaky(ctx, example, true)
	case NotFlaky:
	}
}

type execution struct {
	finished bool
	outcome  m.Outcome
	result   m.ExecutionResult
	coverage map[string]m.FileCoverage
}

// execute runs one example in isolation, optionally collecting coverage.
func (w *workflow) execute(ctx context.Context, proj project, example m.Example, timeout time.Duration, withCoverage bool) (execution, error) {
	req := m.RunTestRequest{
		WorkDir:  proj.root,
		Package:  example.Package,
		TestName: example.TestName,
		Timeout:  timeout,
	}

	if withCoverage {
		tmpDir, err := w.CreateTempDir("gotracer-cover-*")
		if err != nil {
			return execution{}, fmt.Errorf("create coverage dir: %w", err)
		}

		defer func() {
			_ = w.RemoveAll(tmpDir)
		}()

		req.CoverProfile = w.JoinPath(string(tmpDir), "cover.out")
		req.CoverPkg = proj.modulePath + "/..."
	}

	res, err := w.RunTest(ctx, req)
	if err != nil {
		return execution{}, err
	}

	outcome, result, finished := outcomeFromEvents(res.Events, example)
	if !finished {
		slog.Warn("example did not finish", "example", example.FullDescription)
		return execution{}, nil
	}

	exec := execution{finished: true, outcome: outcome, result: result}

	if withCoverage {
		coverage, err := w.ParseProfile(req.CoverProfile, proj.modulePath)

		switch {
		case errors.Is(err, os.ErrNotExist):
			// no profile is written when the package fails to build
		case err != nil:
			slog.Warn("failed to parse coverage profile", "example", example.FullDescription, "error", err)
		default:
			exec.coverage = coverage
		}
	}

	return exec, nil
}

// outcomeFromEvents maps the go test -json stream of one example to an
// outcome. A package failure with no terminal event for the test (a build
// failure or a -timeout panic) counts as failed. No terminal event at all
// means the example was interrupted.
func outcomeFromEvents(events []m.TestEvent, example m.Example) (m.Outcome, m.ExecutionResult, bool) {
	var (
		startedAt   time.Time
		packageFail *m.TestEvent
	)

	for i := range events {
		event := events[i]
		if event.Package != example.Package {
			continue
		}

		if event.Test == "" {
			if event.Action == "fail" {
				packageFail = &events[i]
			}

			continue
		}

		if event.Test != example.TestName {
			continue
		}

		var outcome m.Outcome

		switch event.Action {
		case "run":
			startedAt = event.Time
			continue
		case "pass":
			outcome = m.Passed
		case "fail":
			outcome = m.Failed
		case "skip":
			outcome = m.Pending
		default:
			continue
		}

		return outcome, executionResult(outcome, startedAt, event.Time, event.Elapsed), true
	}

	if packageFail != nil {
		return m.Failed, executionResult(m.Failed, startedAt, packageFail.Time, packageFail.Elapsed), true
	}

	return 0, m.ExecutionResult{}, false
}

func executionResult(outcome m.Outcome, startedAt, finishedAt time.Time, elapsed float64) m.ExecutionResult {
	if startedAt.IsZero() {
		startedAt = finishedAt.Add(-time.Duration(elapsed * float64(time.Second)))
	}

	return m.ExecutionResult{
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		RunTime:    elapsed,
		Status:     outcome.String(),
	}
}

// registerTouchedFiles hashes every file the run depends on so the next run
// can detect changes.
func (w *workflow) registerTouchedFiles(root m.Path, reporter *Reporter) error {
	for _, name := range reporter.TouchedFiles() {
		hash, err := w.HashFile(w.JoinPath(string(root), filepath.FromSlash(name)))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return fmt.Errorf("hash %s: %w", name, err)
		}

		reporter.RegisterSourceFile(m.SourceFile{FileName: name, Hash: hash})
	}

	return nil
}

// Affected lists the example files depending on the given files, according to
// the latest snapshot.
func (w *workflow) Affected(ctx context.Context, args AffectedArgs) error {
	proj, err := w.resolveProject(args.WorkDir, args.CachePath)
	if err != nil {
		return err
	}

	lastRun, err := w.LoadLastRun(ctx, proj.cacheRoot)
	if err != nil {
		return fmt.Errorf("load last run: %w", err)
	}

	snapshot, err := w.LoadSnapshot(ctx, proj.cacheRoot, lastRun.RunID)
	if err != nil {
		return err
	}

	files := make([]string, 0, len(args.Files))
	entries := make([]m.ReverseDependencyEntry, 0, len(args.Files))

	for _, file := range args.Files {
		name, err := w.snapshotFileName(proj.root, file)
		if err != nil {
			return err
		}

		files = append(files, name)

		if entry, ok := snapshot.ReverseDependency.Lookup(name); ok {
			entries = append(entries, entry)
		}
	}

	w.DisplayAffected(ctx, files, entries)

	return nil
}

// snapshotFileName converts a user supplied path to the module-relative,
// slash-separated form the snapshot uses.
func (w *workflow) snapshotFileName(root m.Path, file string) (string, error) {
	if !filepath.IsAbs(file) {
		return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(file)), "./"), nil
	}

	rel, err := w.RelPath(root, m.Path(file))
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", file, err)
	}

	return string(rel), nil
}

// ShowLastRun prints the latest run summary without loading the snapshot.
func (w *workflow) ShowLastRun(ctx context.Context, args LastRunArgs) error {
	proj, err := w.resolveProject(args.WorkDir, args.CachePath)
	if err != nil {
		return err
	}

	lastRun, err := w.LoadLastRun(ctx, proj.cacheRoot)
	if err != nil {
		return fmt.Errorf("load last run: %w", err)
	}

	w.DisplaySummary(ctx, lastRun, 0)

	return nil
}
