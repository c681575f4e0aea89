package domain

import (
	"sort"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// CoverageAggregator stores, per example, the files touched while it ran.
type CoverageAggregator struct {
	coverage map[m.ExampleID]map[string]m.FileCoverage
}

// NewCoverageAggregator returns an empty aggregator.
func NewCoverageAggregator() *CoverageAggregator {
	return &CoverageAggregator{coverage: make(map[m.ExampleID]map[string]m.FileCoverage)}
}

func (c *CoverageAggregator) getOrCreate(id m.ExampleID) map[string]m.FileCoverage {
	files, ok := c.coverage[id]
	if !ok {
		files = make(map[string]m.FileCoverage)
		c.coverage[id] = files
	}

	return files
}

// Record stores the detail for one file touched by an example, replacing any
// earlier detail for the same file.
func (c *CoverageAggregator) Record(id m.ExampleID, fileName string, detail m.FileCoverage) {
	c.getOrCreate(id)[fileName] = detail
}

// RecordExample stores every file touched by an example.
func (c *CoverageAggregator) RecordExample(id m.ExampleID, files map[string]m.FileCoverage) {
	entry := c.getOrCreate(id)
	for name, detail := range files {
		entry[name] = detail
	}
}

// Files returns the files an example touched, in ascending order.
func (c *CoverageAggregator) Files(id m.ExampleID) []string {
	files := c.coverage[id]

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Examples returns the ids with coverage data, in ascending order.
func (c *CoverageAggregator) Examples() []m.ExampleID {
	return m.SortedIDs(c.coverage)
}

// Report returns a copy of the aggregated coverage.
func (c *CoverageAggregator) Report() map[m.ExampleID]map[string]m.FileCoverage {
	out := make(map[m.ExampleID]map[string]m.FileCoverage, len(c.coverage))

	for id, files := range c.coverage {
		copied := make(map[string]m.FileCoverage, len(files))
		for name, detail := range files {
			copied[name] = detail
		}

		out[id] = copied
	}

	return out
}
