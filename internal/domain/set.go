package domain

import (
	"sort"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// idSet is a set of example ids with deterministic iteration through sorted().
type idSet map[m.ExampleID]struct{}

func newIDSet(ids ...m.ExampleID) idSet {
	s := make(idSet, len(ids))
	for _, id := range ids {
		s.add(id)
	}

	return s
}

func (s idSet) add(id m.ExampleID) {
	s[id] = struct{}{}
}

func (s idSet) has(id m.ExampleID) bool {
	_, ok := s[id]
	return ok
}

func (s idSet) sorted() []m.ExampleID {
	ids := make([]m.ExampleID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// union returns the elements of s and other, in ascending order.
func (s idSet) union(other idSet) []m.ExampleID {
	merged := make(idSet, len(s)+len(other))
	for id := range s {
		merged.add(id)
	}

	for id := range other {
		merged.add(id)
	}

	return merged.sorted()
}

// difference keeps the ids of ordered that are not in exclude, preserving order.
func difference(ordered []m.ExampleID, exclude idSet) []m.ExampleID {
	out := make([]m.ExampleID, 0, len(ordered))
	for _, id := range ordered {
		if !exclude.has(id) {
			out = append(out, id)
		}
	}

	return out
}
