package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

func previousSnapshot() *m.Snapshot {
	ran := &m.ExecutionResult{Status: "passed"}

	return &m.Snapshot{
		AllExamples: map[m.ExampleID]m.Example{
			"clean":     {ID: "clean", FileName: "a_test.go", RerunFileName: "a_test.go", ExecutionResult: ran},
			"failed":    {ID: "failed", FileName: "a_test.go", RerunFileName: "a_test.go", ExecutionResult: ran},
			"pending":   {ID: "pending", FileName: "a_test.go", RerunFileName: "a_test.go", ExecutionResult: ran},
			"flaky":     {ID: "flaky", FileName: "a_test.go", RerunFileName: "a_test.go", ExecutionResult: ran},
			"touched":   {ID: "touched", FileName: "b_test.go", RerunFileName: "b_test.go", ExecutionResult: ran},
			"deps":      {ID: "deps", FileName: "a_test.go", RerunFileName: "a_test.go", ExecutionResult: ran},
			"nodeps":    {ID: "nodeps", FileName: "a_test.go", RerunFileName: "a_test.go", ExecutionResult: ran},
			"stopped":   {ID: "stopped", FileName: "a_test.go", RerunFileName: "a_test.go"},
			"via-rerun": {ID: "via-rerun", FileName: "helper_test.go", RerunFileName: "b_test.go", ExecutionResult: ran},
		},
		FailedExamples:  []m.ExampleID{"failed"},
		PendingExamples: []m.ExampleID{"pending"},
		FlakyExamples:   []m.ExampleID{"flaky"},
		Dependency: map[m.ExampleID][]string{
			"clean":     {"lib.go"},
			"failed":    {},
			"pending":   {},
			"flaky":     {},
			"touched":   {},
			"deps":      {"lib.go", "changed.go"},
			"stopped":   {},
			"via-rerun": {},
		},
	}
}

func TestSelector_Reason(t *testing.T) {
	files := NewFileRegistry()
	files.Apply(m.FileChanges{Modified: []string{"b_test.go", "changed.go"}})

	selector := NewSelector(previousSnapshot(), files)

	tests := []struct {
		id      m.ExampleID
		file    string
		rerun   string
		want    string
		wantRun bool
	}{
		{"clean", "a_test.go", "a_test.go", "", false},
		{"new", "a_test.go", "a_test.go", ReasonNew, true},
		{"failed", "a_test.go", "a_test.go", ReasonFailed, true},
		{"pending", "a_test.go", "a_test.go", ReasonPending, true},
		{"flaky", "a_test.go", "a_test.go", ReasonFlaky, true},
		{"touched", "b_test.go", "b_test.go", ReasonFileChanged, true},
		{"via-rerun", "helper_test.go", "b_test.go", ReasonFileChanged, true},
		{"deps", "a_test.go", "a_test.go", ReasonFilesChanged, true},
		{"nodeps", "a_test.go", "a_test.go", ReasonNoDependency, true},
		{"stopped", "a_test.go", "a_test.go", ReasonNoResult, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			reason, run := selector.Reason(m.Example{ID: tt.id, FileName: tt.file, RerunFileName: tt.rerun})

			assert.Equal(t, tt.wantRun, run)
			assert.Equal(t, tt.want, reason)
		})
	}
}

func TestSelector_NoPreviousSnapshot(t *testing.T) {
	selector := NewSelector(nil, NewFileRegistry())

	reason, run := selector.Reason(m.Example{ID: "any"})

	assert.True(t, run)
	assert.Equal(t, ReasonNoCache, reason)
}

func TestSelector_Select(t *testing.T) {
	selector := NewSelector(previousSnapshot(), NewFileRegistry())

	examples := []m.Example{
		{ID: "failed", FileName: "a_test.go", RerunFileName: "a_test.go"},
		{ID: "clean", FileName: "a_test.go", RerunFileName: "a_test.go"},
		{ID: "new", FileName: "a_test.go", RerunFileName: "a_test.go"},
	}

	selection := selector.Select(examples)

	assert.Equal(t, []m.Example{examples[0], examples[2]}, selection.Run)
	assert.Equal(t, []m.Example{examples[1]}, selection.Skip)
	assert.Equal(t, map[m.ExampleID]string{"failed": ReasonFailed, "new": ReasonNew}, selection.Reasons)
}
