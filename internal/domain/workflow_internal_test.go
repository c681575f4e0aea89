package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

func TestOutcomeFromEvents(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	target := m.Example{Package: "example.com/p", TestName: "TestA"}

	ev := func(offset time.Duration, action, pkg, test string, elapsed float64) m.TestEvent {
		return m.TestEvent{Time: start.Add(offset), Action: action, Package: pkg, Test: test, Elapsed: elapsed}
	}

	tests := []struct {
		name         string
		events       []m.TestEvent
		want         m.Outcome
		wantFinished bool
		wantRunTime  float64
	}{
		{
			name:         "pass",
			events:       []m.TestEvent{ev(0, "run", "example.com/p", "TestA", 0), ev(time.Second, "pass", "example.com/p", "TestA", 1)},
			want:         m.Passed,
			wantFinished: true,
			wantRunTime:  1,
		},
		{
			name:         "fail",
			events:       []m.TestEvent{ev(0, "run", "example.com/p", "TestA", 0), ev(0, "output", "example.com/p", "TestA", 0), ev(time.Second, "fail", "example.com/p", "TestA", 0.5)},
			want:         m.Failed,
			wantFinished: true,
			wantRunTime:  0.5,
		},
		{
			name:         "skip is pending",
			events:       []m.TestEvent{ev(0, "run", "example.com/p", "TestA", 0), ev(0, "skip", "example.com/p", "TestA", 0)},
			want:         m.Pending,
			wantFinished: true,
		},
		{
			name:         "subtests are ignored",
			events:       []m.TestEvent{ev(0, "run", "example.com/p", "TestA", 0), ev(0, "fail", "example.com/p", "TestA/sub", 0), ev(time.Second, "pass", "example.com/p", "TestA", 1)},
			want:         m.Passed,
			wantFinished: true,
			wantRunTime:  1,
		},
		{
			name:         "build failure",
			events:       []m.TestEvent{ev(0, "output", "example.com/p", "", 0), ev(time.Second, "fail", "example.com/p", "", 0.1)},
			want:         m.Failed,
			wantFinished: true,
			wantRunTime:  0.1,
		},
		{
			name: "timeout is failed",
			events: []m.TestEvent{
				ev(0, "run", "example.com/p", "TestA", 0),
				ev(3*time.Second, "output", "example.com/p", "TestA", 0),
				ev(3*time.Second, "output", "example.com/p", "", 0),
				ev(3*time.Second, "fail", "example.com/p", "", 3),
			},
			want:         m.Failed,
			wantFinished: true,
			wantRunTime:  3,
		},
		{
			name:   "no terminal event",
			events: []m.TestEvent{ev(0, "run", "example.com/p", "TestA", 0), ev(0, "output", "example.com/p", "TestA", 0)},
		},
		{
			name:   "other package",
			events: []m.TestEvent{ev(0, "pass", "example.com/q", "TestA", 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, result, finished := outcomeFromEvents(tt.events, target)

			assert.Equal(t, tt.wantFinished, finished)

			if !tt.wantFinished {
				return
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), result.Status)
			assert.InDelta(t, tt.wantRunTime, result.RunTime, 1e-9)
			assert.False(t, result.StartedAt.After(result.FinishedAt))
		})
	}
}

func TestExecutionResult_DerivesStartFromElapsed(t *testing.T) {
	finished := time.Date(2026, 1, 1, 12, 0, 2, 0, time.UTC)

	result := executionResult(m.Passed, time.Time{}, finished, 1.5)

	assert.Equal(t, finished.Add(-1500*time.Millisecond), result.StartedAt)
	assert.Equal(t, finished, result.FinishedAt)
	assert.Equal(t, "passed", result.Status)
}
