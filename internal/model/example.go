// Package model defines the data structures shared by the tracer engine and its adapters.
package model

import "time"

// ExampleID is the stable identity of one example across runs.
type ExampleID string

// Outcome is the kind of result the execution host reports for an example.
type Outcome int

const (
	// Passed indicates the example ran and succeeded.
	Passed Outcome = iota
	// Failed indicates the example ran and failed.
	Failed
	// Pending indicates the example ran but skipped itself (t.Skip).
	Pending
	// Skipped indicates the tracer did not run the example because nothing it depends on changed.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Pending:
		return "pending"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// ExecutionResult is the normalized outcome stamped on an example.
type ExecutionResult struct {
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
	RunTime    float64   `json:"run_time" yaml:"run_time"` // seconds
	Status     string    `json:"status" yaml:"status"`
}

// Example identifies one test case.
type Example struct {
	ID              ExampleID        `json:"example_id" yaml:"example_id"`
	FullDescription string           `json:"full_description" yaml:"full_description"`
	FileName        string           `json:"file_name" yaml:"file_name"`
	RerunFileName   string           `json:"rerun_file_name" yaml:"rerun_file_name"`
	RerunLineNumber int              `json:"rerun_line_number" yaml:"rerun_line_number"`
	Package         string           `json:"package" yaml:"package"`
	TestName        string           `json:"test_name" yaml:"test_name"`
	ExecutionResult *ExecutionResult `json:"execution_result,omitempty" yaml:"execution_result,omitempty"`
}

// SeenExample is the part of a previous run's example the reconciler needs.
type SeenExample struct {
	FileName      string `json:"file_name" yaml:"file_name"`
	RerunFileName string `json:"rerun_file_name" yaml:"rerun_file_name"`
}

// Seen projects an example onto its previous-run view.
func (e Example) Seen() SeenExample {
	return SeenExample{FileName: e.FileName, RerunFileName: e.RerunFileName}
}
