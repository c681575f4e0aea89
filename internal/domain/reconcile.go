package domain

import (
	m "gotracer.dev/pkg/gotracer/internal/model"
)

// ChangeIndex answers whether a file changed since the previous snapshot.
type ChangeIndex interface {
	IsChanged(fileName string) bool
}

// ChangeIndexFunc adapts a predicate to ChangeIndex.
type ChangeIndexFunc func(fileName string) bool

// IsChanged implements ChangeIndex.
func (f ChangeIndexFunc) IsChanged(fileName string) bool { return f(fileName) }

// RegisterDeletedExamples classifies examples the previous run knew about as
// deleted. An example qualifies when it neither ran nor was skipped, was not
// interrupted, and its file or rerun file changed. It returns the deleted ids
// in ascending order.
func (r *ExampleRegistry) RegisterDeletedExamples(seen map[m.ExampleID]m.SeenExample, files ChangeIndex) []m.ExampleID {
	present := newIDSet(r.skipped.union(newIDSet(m.SortedIDs(r.all)...))...)

	candidates := difference(m.SortedIDs(seen), present)
	candidates = difference(candidates, r.interrupted)

	deleted := newIDSet()

	for _, id := range candidates {
		example := seen[id]
		if files.IsChanged(example.FileName) || files.IsChanged(example.RerunFileName) {
			deleted.add(id)
		}
	}

	r.deleted = deleted

	return deleted.sorted()
}
