package model

import "time"

// TestPackage is a Go package with test files, as reported by go list.
type TestPackage struct {
	ImportPath   string   `json:"ImportPath"`
	Dir          string   `json:"Dir"`
	TestGoFiles  []string `json:"TestGoFiles"`
	XTestGoFiles []string `json:"XTestGoFiles"`
}

// TestFunc is a top-level test function declaration.
type TestFunc struct {
	Name string
	File Path
	Line int
}

// TestEvent represents a single event from go test -json output.
type TestEvent struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

// RunTestRequest describes one isolated test execution.
type RunTestRequest struct {
	WorkDir      Path
	Package      string
	TestName     string
	CoverProfile Path // empty disables coverage
	CoverPkg     string
	Timeout      time.Duration
}

// RunTestResult holds the events emitted by an isolated test execution.
type RunTestResult struct {
	Events []TestEvent
	Output string
}
