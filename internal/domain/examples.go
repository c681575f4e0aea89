// Package domain holds the example/file dependency-tracking engine and the
// workflow that drives it.
package domain

import (
	m "gotracer.dev/pkg/gotracer/internal/model"
)

type exampleState int

const (
	stateUnseen exampleState = iota
	stateRegistered
	stateDuplicate
	stateFinalized
)

// ExampleRegistry owns example identity and outcome classification for one run.
// It is not safe for concurrent use; Reporter serializes access to it.
type ExampleRegistry struct {
	all    map[m.ExampleID]m.Example
	groups map[m.ExampleID][]m.Example
	state  map[m.ExampleID]exampleState

	registrations int

	passed        idSet
	failed        idSet
	pending       idSet
	skipped       idSet
	interrupted   idSet
	possiblyFlaky idSet
	flaky         idSet
	deleted       idSet
}

// NewExampleRegistry returns an empty registry.
func NewExampleRegistry() *ExampleRegistry {
	return &ExampleRegistry{
		all:           make(map[m.ExampleID]m.Example),
		groups:        make(map[m.ExampleID][]m.Example),
		state:         make(map[m.ExampleID]exampleState),
		passed:        newIDSet(),
		failed:        newIDSet(),
		pending:       newIDSet(),
		skipped:       newIDSet(),
		interrupted:   newIDSet(),
		possiblyFlaky: newIDSet(),
		flaky:         newIDSet(),
		deleted:       newIDSet(),
	}
}

// Register records an example. Every registration is kept in the example's
// group so FinalizeDuplicates can see all writers of an id.
func (r *ExampleRegistry) Register(example m.Example) {
	id := example.ID
	r.registrations++

	switch r.state[id] {
	case stateFinalized:
		// The singleton group was pruned; restore the canonical writer.
		r.groups[id] = []m.Example{r.all[id]}
	case stateDuplicate:
		r.groups[id] = append(r.groups[id], example)
		return
	case stateUnseen, stateRegistered:
	}

	r.state[id] = stateRegistered
	r.all[id] = example
	r.groups[id] = append(r.groups[id], example)
}

// FinalizeDuplicates demotes every id registered more than once and prunes
// singleton groups. Calling it again is a no-op.
func (r *ExampleRegistry) FinalizeDuplicates() {
	for id, group := range r.groups {
		if len(group) < 2 {
			delete(r.groups, id)
			r.state[id] = stateFinalized

			continue
		}

		r.state[id] = stateDuplicate
		delete(r.all, id)

		for _, set := range []idSet{r.passed, r.failed, r.pending, r.skipped, r.interrupted, r.possiblyFlaky, r.flaky} {
			delete(set, id)
		}
	}
}

// RecordOutcome classifies the example and stamps its execution result.
// It reports whether the outcome was recorded: duplicates, unknown ids and
// examples that already carry an outcome are ignored.
func (r *ExampleRegistry) RecordOutcome(id m.ExampleID, kind m.Outcome, result m.ExecutionResult) bool {
	if r.IsDuplicate(id) {
		return false
	}

	example, ok := r.all[id]
	if !ok || example.ExecutionResult != nil {
		return false
	}

	switch kind {
	case m.Passed:
		r.passed.add(id)
	case m.Failed:
		r.failed.add(id)
	case m.Pending:
		r.pending.add(id)
	case m.Skipped:
		r.skipped.add(id)
	default:
		return false
	}

	normalized := m.ExecutionResult{
		StartedAt:  result.StartedAt.UTC(),
		FinishedAt: result.FinishedAt.UTC(),
		RunTime:    result.RunTime,
		Status:     result.Status,
	}
	if normalized.Status == "" {
		normalized.Status = kind.String()
	}

	example.ExecutionResult = &normalized
	r.all[id] = example

	return true
}

// FinalizeInterrupted classifies every example without an outcome as
// interrupted and returns them in ascending order.
func (r *ExampleRegistry) FinalizeInterrupted() []m.ExampleID {
	for id, example := range r.all {
		if example.ExecutionResult == nil {
			r.interrupted.add(id)
		}
	}

	return r.interrupted.sorted()
}

// RegisterPossiblyFlaky marks an example that passed on an isolated re-run after failing.
func (r *ExampleRegistry) RegisterPossiblyFlaky(id m.ExampleID) {
	if r.IsDuplicate(id) {
		return
	}

	r.possiblyFlaky.add(id)
}

// RegisterFlaky marks an example whose nondeterminism was confirmed.
func (r *ExampleRegistry) RegisterFlaky(id m.ExampleID) {
	if r.IsDuplicate(id) {
		return
	}

	r.flaky.add(id)
}

func (r *ExampleRegistry) IsDuplicate(id m.ExampleID) bool {
	return r.state[id] == stateDuplicate
}

func (r *ExampleRegistry) IsInterrupted(id m.ExampleID) bool   { return r.interrupted.has(id) }
func (r *ExampleRegistry) IsPassed(id m.ExampleID) bool        { return r.passed.has(id) }
func (r *ExampleRegistry) IsFailed(id m.ExampleID) bool        { return r.failed.has(id) }
func (r *ExampleRegistry) IsPending(id m.ExampleID) bool       { return r.pending.has(id) }
func (r *ExampleRegistry) IsSkipped(id m.ExampleID) bool       { return r.skipped.has(id) }
func (r *ExampleRegistry) IsDeleted(id m.ExampleID) bool       { return r.deleted.has(id) }
func (r *ExampleRegistry) IsFlaky(id m.ExampleID) bool         { return r.flaky.has(id) }
func (r *ExampleRegistry) IsPossiblyFlaky(id m.ExampleID) bool { return r.possiblyFlaky.has(id) }

// Example returns the canonical example for id.
func (r *ExampleRegistry) Example(id m.ExampleID) (m.Example, bool) {
	example, ok := r.all[id]
	return example, ok
}

// AllExamples returns a copy of the canonical examples.
func (r *ExampleRegistry) AllExamples() map[m.ExampleID]m.Example {
	out := make(map[m.ExampleID]m.Example, len(r.all))
	for id, example := range r.all {
		out[id] = example
	}

	return out
}

// Duplicates returns a copy of the duplicate groups. Before FinalizeDuplicates
// it is empty.
func (r *ExampleRegistry) Duplicates() map[m.ExampleID][]m.Example {
	out := make(map[m.ExampleID][]m.Example)

	for id, group := range r.groups {
		if r.state[id] != stateDuplicate {
			continue
		}

		out[id] = append([]m.Example(nil), group...)
	}

	return out
}

// DuplicateCount is the number of examples across all duplicate groups.
func (r *ExampleRegistry) DuplicateCount() int {
	total := 0

	for id, group := range r.groups {
		if r.state[id] == stateDuplicate {
			total += len(group)
		}
	}

	return total
}

func (r *ExampleRegistry) Registrations() int           { return r.registrations }
func (r *ExampleRegistry) Passed() []m.ExampleID        { return r.passed.sorted() }
func (r *ExampleRegistry) Failed() []m.ExampleID        { return r.failed.sorted() }
func (r *ExampleRegistry) Pending() []m.ExampleID       { return r.pending.sorted() }
func (r *ExampleRegistry) Skipped() []m.ExampleID       { return r.skipped.sorted() }
func (r *ExampleRegistry) Interrupted() []m.ExampleID   { return r.interrupted.sorted() }
func (r *ExampleRegistry) PossiblyFlaky() []m.ExampleID { return r.possiblyFlaky.sorted() }
func (r *ExampleRegistry) Flaky() []m.ExampleID         { return r.flaky.sorted() }
func (r *ExampleRegistry) Deleted() []m.ExampleID       { return r.deleted.sorted() }
