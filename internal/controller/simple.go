package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

var noticeStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("214")).
	Padding(0, 1)

// SimpleUI implements UI using the cobra command's output writer.
type SimpleUI struct {
	mu  sync.Mutex
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start implements UI. Plain output has no live view.
func (s *SimpleUI) Start(context.Context) error { return nil }

// Close implements UI.
func (s *SimpleUI) Close(context.Context) {}

// DisplayDuplicates prints a notice listing every example sharing an id.
func (s *SimpleUI) DisplayDuplicates(ctx context.Context, duplicates map[m.ExampleID][]m.Example) {
	if ctx.Err() != nil || len(duplicates) == 0 {
		return
	}

	var lines []string

	count := 0

	for _, id := range m.SortedIDs(duplicates) {
		for _, example := range duplicates[id] {
			lines = append(lines, fmt.Sprintf("  * %s (%s:%d)", example.FullDescription, example.RerunFileName, example.RerunLineNumber))
			count++
		}
	}

	header := fmt.Sprintf("%d examples share an id with another example and were excluded from the snapshot:", count)
	body := header + "\n" + strings.Join(lines, "\n") + "\n\nRename the tests so every package test name is unique."

	s.printf("%s\n", noticeStyle.Render(body))
}

// DisplayRunPlan prints how many examples run and how many are reused.
func (s *SimpleUI) DisplayRunPlan(ctx context.Context, run, skip, threads int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Running %d example(s) with %d worker(s), skipping %d unchanged\n", run, threads, skip)
}

// DisplayExampleResult prints one finished example.
func (s *SimpleUI) DisplayExampleResult(ctx context.Context, example m.Example, result m.ExecutionResult) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%-7s %s (%.2fs)\n", result.Status, example.FullDescription, result.RunTime)
}

// DisplayFlaky prints the verdict of a failed example's re-runs.
func (s *SimpleUI) DisplayFlaky(ctx context.Context, example m.Example, confirmed bool) {
	if ctx.Err() != nil {
		return
	}

	label := "possibly flaky"
	if confirmed {
		label = "flaky"
	}

	s.printf("%s: %s (%s:%d)\n", label, example.FullDescription, example.RerunFileName, example.RerunLineNumber)
}

// DisplayInterrupted prints how many examples never finished.
func (s *SimpleUI) DisplayInterrupted(_ context.Context, count int) {
	if count == 0 {
		return
	}

	s.printf("%s\n", noticeStyle.Render(fmt.Sprintf("%d example(s) were interrupted and will run again next time", count)))
}

// DisplayDeleted prints how many examples disappeared since the previous run.
func (s *SimpleUI) DisplayDeleted(_ context.Context, count int) {
	if count == 0 {
		return
	}

	s.printf("%d example(s) were deleted since the previous run\n", count)
}

// DisplaySnapshotWritten prints where the snapshot was stored.
func (s *SimpleUI) DisplaySnapshotWritten(_ context.Context, dir m.Path) {
	s.printf("Snapshot written to %s\n", dir)
}

// DisplaySummary prints the run summary table.
func (s *SimpleUI) DisplaySummary(_ context.Context, lastRun m.LastRun, elapsed time.Duration) {
	s.printf("\n%s", renderSummaryTable(lastRun))

	if elapsed > 0 {
		s.printf("Finished in %s\n", elapsed.Round(time.Millisecond))
	}
}

// DisplayAffected prints the origin files of the examples depending on files.
func (s *SimpleUI) DisplayAffected(ctx context.Context, files []string, entries []m.ReverseDependencyEntry) {
	if ctx.Err() != nil {
		return
	}

	if len(entries) == 0 {
		s.printf("No examples depend on %s\n", strings.Join(files, ", "))
		return
	}

	s.printf("\n%s", renderAffectedTable(entries))
}

func renderSummaryTable(lastRun m.LastRun) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "Examples"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := []struct {
		label string
		count int
	}{
		{"run", lastRun.ExampleCount},
		{"skipped", lastRun.SkippedExamples},
		{"failed", lastRun.FailedExamples},
		{"pending", lastRun.PendingExamples},
		{"flaky", lastRun.FlakyExamples},
		{"interrupted", lastRun.InterruptedExamples},
		{"duplicate", lastRun.DuplicateExamples},
	}

	for _, row := range rows {
		table.Append([]string{row.label, fmt.Sprintf("%d", row.count)})
	}

	table.SetFooter([]string{shortRunID(lastRun.RunID), fmt.Sprintf("%d", lastRun.ActualCount)})
	table.Render()

	return tableBuffer.String()
}

func renderAffectedTable(entries []m.ReverseDependencyEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Example File", "Examples"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoMergeCells(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	origins := make(map[string]int)

	for _, entry := range entries {
		for _, origin := range entry.Examples {
			table.Append([]string{entry.FileName, origin.FileName, fmt.Sprintf("%d", origin.Count)})
			origins[origin.FileName] += origin.Count
		}
	}

	table.SetFooter([]string{"", fmt.Sprintf("%d file(s)", len(origins)), ""})
	table.Render()

	return tableBuffer.String()
}

func shortRunID(runID string) string {
	if len(runID) > 12 {
		return runID[:12]
	}

	return runID
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
