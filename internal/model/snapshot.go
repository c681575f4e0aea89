package model

import (
	"sort"
	"time"
)

// Snapshot is the persisted state of one run.
type Snapshot struct {
	RunID             string
	Timestamp         time.Time
	AllExamples       map[ExampleID]Example
	FlakyExamples     []ExampleID
	FailedExamples    []ExampleID
	PendingExamples   []ExampleID
	AllFiles          map[string]SourceFile
	Dependency        map[ExampleID][]string
	ReverseDependency ReverseDependency
	ExamplesCoverage  map[ExampleID]map[string]FileCoverage
	LastRun           LastRun
}

// SeenExamples returns the reconciler's view of every example in the snapshot.
func (s Snapshot) SeenExamples() map[ExampleID]SeenExample {
	seen := make(map[ExampleID]SeenExample, len(s.AllExamples))
	for id, example := range s.AllExamples {
		seen[id] = example.Seen()
	}

	return seen
}

// FileChanges lists the files a change collaborator considers modified or deleted.
type FileChanges struct {
	Modified []string
	Deleted  []string
}

// SortedIDs returns ids in ascending order.
func SortedIDs[V any](m map[ExampleID]V) []ExampleID {
	ids := make([]ExampleID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
