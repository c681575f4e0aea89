package domain

import (
	m "gotracer.dev/pkg/gotracer/internal/model"
)

// Reasons an example is selected to run.
const (
	ReasonNoCache      = "no cache"
	ReasonNew          = "new example"
	ReasonFailed       = "failed previously"
	ReasonPending      = "pending previously"
	ReasonFlaky        = "flaky"
	ReasonFileChanged  = "example file changed"
	ReasonNoDependency = "no dependency data"
	ReasonNoResult     = "no previous result"
	ReasonFilesChanged = "dependency changed"
)

// Selection splits the discovered examples into those to run and those whose
// previous results still hold.
type Selection struct {
	Run     []m.Example
	Skip    []m.Example
	Reasons map[m.ExampleID]string
}

// Selector decides which examples must run given the previous snapshot.
type Selector struct {
	previous *m.Snapshot
	files    ChangeIndex

	failed  idSet
	pending idSet
	flaky   idSet
}

// NewSelector builds a selector. A nil previous snapshot selects everything.
func NewSelector(previous *m.Snapshot, files ChangeIndex) *Selector {
	s := &Selector{previous: previous, files: files}

	if previous != nil {
		s.failed = newIDSet(previous.FailedExamples...)
		s.pending = newIDSet(previous.PendingExamples...)
		s.flaky = newIDSet(previous.FlakyExamples...)
	}

	return s
}

// Reason returns why an example must run, or false when it may be skipped.
func (s *Selector) Reason(example m.Example) (string, bool) {
	if s.previous == nil {
		return ReasonNoCache, true
	}

	id := example.ID

	cached, ok := s.previous.AllExamples[id]
	if !ok {
		return ReasonNew, true
	}

	switch {
	case cached.ExecutionResult == nil:
		return ReasonNoResult, true
	case s.failed.has(id):
		return ReasonFailed, true
	case s.pending.has(id):
		return ReasonPending, true
	case s.flaky.has(id):
		return ReasonFlaky, true
	case s.files.IsChanged(example.FileName) || s.files.IsChanged(example.RerunFileName):
		return ReasonFileChanged, true
	}

	deps, ok := s.previous.Dependency[id]
	if !ok {
		return ReasonNoDependency, true
	}

	for _, fileName := range deps {
		if s.files.IsChanged(fileName) {
			return ReasonFilesChanged, true
		}
	}

	return "", false
}

// Select partitions examples, preserving their order.
func (s *Selector) Select(examples []m.Example) Selection {
	selection := Selection{Reasons: make(map[m.ExampleID]string)}

	for _, example := range examples {
		reason, run := s.Reason(example)
		if !run {
			selection.Skip = append(selection.Skip, example)
			continue
		}

		selection.Run = append(selection.Run, example)
		selection.Reasons[example.ID] = reason
	}

	return selection
}
