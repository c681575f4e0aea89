package domain

import (
	"sort"

	m "gotracer.dev/pkg/gotracer/internal/model"
)

// DependencyGraph is the forward example -> files mapping. It is a derived
// view: build a new graph whenever coverage changes.
type DependencyGraph struct {
	forward map[m.ExampleID]map[string]struct{}
}

// NewDependencyGraph returns an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{forward: make(map[m.ExampleID]map[string]struct{})}
}

// BuildDependencyGraph derives a graph from the files each example touched.
func BuildDependencyGraph(coverage *CoverageAggregator) *DependencyGraph {
	graph := NewDependencyGraph()

	for _, id := range coverage.Examples() {
		for _, fileName := range coverage.Files(id) {
			graph.RecordDependency(id, fileName)
		}
	}

	return graph
}

func (g *DependencyGraph) getOrCreate(id m.ExampleID) map[string]struct{} {
	files, ok := g.forward[id]
	if !ok {
		files = make(map[string]struct{})
		g.forward[id] = files
	}

	return files
}

// RecordDependency adds fileName to the forward set of id.
func (g *DependencyGraph) RecordDependency(id m.ExampleID, fileName string) {
	g.getOrCreate(id)[fileName] = struct{}{}
}

// Forward returns example -> sorted file names.
func (g *DependencyGraph) Forward() map[m.ExampleID][]string {
	out := make(map[m.ExampleID][]string, len(g.forward))

	for id, files := range g.forward {
		names := make([]string, 0, len(files))
		for name := range files {
			names = append(names, name)
		}

		sort.Strings(names)
		out[id] = names
	}

	return out
}

// BuildReverseReport aggregates, for every file, how many examples depend on
// it and which origin files define them. Interrupted examples and ids without
// a canonical example are left out. The result is sorted by descending count,
// then by name, at both levels.
func (g *DependencyGraph) BuildReverseReport(examples map[m.ExampleID]m.Example, interrupted func(m.ExampleID) bool) m.ReverseDependency {
	type aggregate struct {
		exampleCount int
		origins      map[string]int
	}

	byFile := make(map[string]*aggregate)

	for id, files := range g.forward {
		if interrupted != nil && interrupted(id) {
			continue
		}

		example, ok := examples[id]
		if !ok {
			continue
		}

		for fileName := range files {
			agg, ok := byFile[fileName]
			if !ok {
				agg = &aggregate{origins: make(map[string]int)}
				byFile[fileName] = agg
			}

			agg.exampleCount++
			agg.origins[example.RerunFileName]++
		}
	}

	report := make(m.ReverseDependency, 0, len(byFile))

	for fileName, agg := range byFile {
		origins := make(m.OriginCounts, 0, len(agg.origins))
		for origin, count := range agg.origins {
			origins = append(origins, m.OriginCount{FileName: origin, Count: count})
		}

		sort.Slice(origins, func(i, j int) bool {
			if origins[i].Count != origins[j].Count {
				return origins[i].Count > origins[j].Count
			}

			return origins[i].FileName < origins[j].FileName
		})

		report = append(report, m.ReverseDependencyEntry{
			FileName:     fileName,
			ExampleCount: agg.exampleCount,
			Examples:     origins,
		})
	}

	sort.Slice(report, func(i, j int) bool {
		if report[i].ExampleCount != report[j].ExampleCount {
			return report[i].ExampleCount > report[j].ExampleCount
		}

		return report[i].FileName < report[j].FileName
	})

	return report
}
