package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

const (
	recentResults  = 5
	maxBarWidth    = 60
	barSidePadding = 4
)

var (
	statusStyles = map[string]lipgloss.Style{
		"passed":  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"failed":  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		"pending": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// TUI shows a live progress view while examples run. Everything reported
// outside Start/Close falls back to the plain SimpleUI output.
type TUI struct {
	*SimpleUI

	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// Start launches the progress view.
func (t *TUI) Start(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	// SIGINT must reach the run's context, not the view.
	program := tea.NewProgram(newRunModel(),
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Warn("progress view stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close stops the progress view, leaving its last frame on screen.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplayRunPlan implements UI.
func (t *TUI) DisplayRunPlan(ctx context.Context, run, skip, threads int) {
	if !t.send(ctx, runPlanMsg{run: run, skip: skip, threads: threads}) {
		t.SimpleUI.DisplayRunPlan(ctx, run, skip, threads)
	}
}

// DisplayExampleResult implements UI.
func (t *TUI) DisplayExampleResult(ctx context.Context, example m.Example, result m.ExecutionResult) {
	if !t.send(ctx, exampleResultMsg{example: example, result: result}) {
		t.SimpleUI.DisplayExampleResult(ctx, example, result)
	}
}

// DisplayFlaky implements UI.
func (t *TUI) DisplayFlaky(ctx context.Context, example m.Example, confirmed bool) {
	if !t.send(ctx, flakyMsg{example: example, confirmed: confirmed}) {
		t.SimpleUI.DisplayFlaky(ctx, example, confirmed)
	}
}

// send forwards msg to the running view. It reports false when no view is
// running so the caller prints instead.
func (t *TUI) send(ctx context.Context, msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	if ctx.Err() == nil {
		program.Send(msg)
	}

	return true
}

type runPlanMsg struct {
	run, skip, threads int
}

type exampleResultMsg struct {
	example m.Example
	result  m.ExecutionResult
}

type flakyMsg struct {
	example   m.Example
	confirmed bool
}

// runModel is the Bubble Tea model of a run in progress.
type runModel struct {
	spinner  spinner.Model
	progress progress.Model

	planned bool
	total   int
	skipped int
	threads int
	done    int
	counts  map[string]int
	recent  []string
}

func newRunModel() runModel {
	return runModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxBarWidth)),
		counts:   make(map[string]int),
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runPlanMsg:
		rm.planned = true
		rm.total = msg.run
		rm.skipped = msg.skip
		rm.threads = msg.threads

		return rm, nil

	case exampleResultMsg:
		rm.done++
		rm.counts[msg.result.Status]++
		rm.pushRecent(fmt.Sprintf("%s %s %s",
			styleStatus(msg.result.Status),
			msg.example.FullDescription,
			faintStyle.Render(fmt.Sprintf("(%.2fs)", msg.result.RunTime))))

		return rm, nil

	case flakyMsg:
		label := "possibly flaky"
		if msg.confirmed {
			label = "flaky"
		}

		rm.pushRecent(fmt.Sprintf("%s %s", statusStyles["pending"].Render(label), msg.example.FullDescription))

		return rm, nil

	case tea.WindowSizeMsg:
		rm.progress.Width = min(max(msg.Width-barSidePadding, 10), maxBarWidth)

		return rm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd
	}

	return rm, nil
}

func (rm *runModel) pushRecent(line string) {
	rm.recent = append(rm.recent, line)
	if len(rm.recent) > recentResults {
		rm.recent = rm.recent[len(rm.recent)-recentResults:]
	}
}

func (rm runModel) fraction() float64 {
	if rm.total == 0 {
		return 0
	}

	return float64(rm.done) / float64(rm.total)
}

func (rm runModel) View() string {
	var b strings.Builder

	if !rm.planned {
		fmt.Fprintf(&b, "%s Discovering examples...\n", rm.spinner.View())
		return b.String()
	}

	fmt.Fprintf(&b, "%s Running %d/%d example(s) with %d worker(s), skipping %d unchanged\n",
		rm.spinner.View(), rm.done, rm.total, rm.threads, rm.skipped)
	fmt.Fprintf(&b, "  %s\n", rm.progress.ViewAs(rm.fraction()))
	fmt.Fprintf(&b, "  passed %d  failed %d  pending %d\n\n",
		rm.counts["passed"], rm.counts["failed"], rm.counts["pending"])

	for _, line := range rm.recent {
		fmt.Fprintf(&b, "  %s\n", line)
	}

	return b.String()
}

func styleStatus(status string) string {
	label := fmt.Sprintf("%-7s", status)

	style, ok := statusStyles[status]
	if !ok {
		return label
	}

	return style.Render(label)
}
