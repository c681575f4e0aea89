package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// TestRunnerAdapter abstracts the go toolchain calls the tracer makes.
type TestRunnerAdapter interface {
	// ListPackages resolves package patterns to packages with their test files.
	ListPackages(ctx context.Context, workDir m.Path, patterns []string) ([]m.TestPackage, error)

	// RunTest runs a single top-level test in isolation with go test -json.
	// A failing test is not an error; only an aborted or unstartable run is.
	RunTest(ctx context.Context, req m.RunTestRequest) (m.RunTestResult, error)
}

// LocalTestRunnerAdapter provides a concrete implementation using os/exec.
type LocalTestRunnerAdapter struct {
	goBinary string
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter using the go
// binary found on PATH.
func NewLocalTestRunnerAdapter() *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{goBinary: "go"}
}

// ListPackages runs go list -json and keeps packages that have test files.
func (a *LocalTestRunnerAdapter) ListPackages(ctx context.Context, workDir m.Path, patterns []string) ([]m.TestPackage, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	args := append([]string{"list", "-json"}, patterns...)

	// #nosec G204 - arguments are package patterns passed to the go tool
	cmd := exec.CommandContext(ctx, a.goBinary, args...)
	cmd.Dir = string(workDir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("go list: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return decodePackages(&stdout)
}

func decodePackages(r io.Reader) ([]m.TestPackage, error) {
	dec := json.NewDecoder(r)

	var packages []m.TestPackage

	for {
		var pkg m.TestPackage

		err := dec.Decode(&pkg)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decode go list output: %w", err)
		}

		if len(pkg.TestGoFiles) == 0 && len(pkg.XTestGoFiles) == 0 {
			continue
		}

		packages = append(packages, pkg)
	}

	return packages, nil
}

// RunTest implements TestRunnerAdapter.
func (a *LocalTestRunnerAdapter) RunTest(ctx context.Context, req m.RunTestRequest) (m.RunTestResult, error) {
	args := runTestArgs(req)

	// #nosec G204 - arguments are built from discovered package and test names
	cmd := exec.CommandContext(ctx, a.goBinary, args...)
	cmd.Dir = string(req.WorkDir)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	result := m.RunTestResult{Output: stderr.String()}

	events, err := ParseTestEvents(&stdout)
	if err != nil {
		return result, err
	}

	result.Events = events

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return result, fmt.Errorf("go test %s: %w", req.TestName, runErr)
	}

	slog.Debug("ran test", "package", req.Package, "test", req.TestName, "events", len(events))

	return result, nil
}

func runTestArgs(req m.RunTestRequest) []string {
	args := []string{"test", "-json", "-count=1", "-run", "^" + regexp.QuoteMeta(req.TestName) + "$"}

	if req.CoverProfile != "" {
		args = append(args, "-coverprofile="+string(req.CoverProfile))
		if req.CoverPkg != "" {
			args = append(args, "-coverpkg="+req.CoverPkg)
		}
	}

	if req.Timeout > 0 {
		args = append(args, "-timeout="+req.Timeout.String())
	}

	return append(args, req.Package)
}

// ParseTestEvents reads a go test -json stream. Lines that are not JSON
// events (build output) are skipped.
func ParseTestEvents(r io.Reader) ([]m.TestEvent, error) {
	var events []m.TestEvent

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || line[0] != '{' {
			continue
		}

		var event m.TestEvent
		if err := json.Unmarshal(line, &event); err != nil {
			continue
		}

		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning test output: %w", err)
	}

	return events, nil
}
