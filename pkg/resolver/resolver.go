// Package resolver computes dependency issues for a block list and adapts
// the result into the shape the visualization engine consumes.
//
// Resolution is a full recompute over the current block list: cycles in the
// requires subgraph, references to unknown blocks, and conflicts between
// enabled blocks. The visualization core treats this package as a
// collaborator - it reads the result, it never raises from it.
package resolver

import (
	"sort"

	"github.com/blockscope/blockscope/pkg/block"
)

// MissingDependency records a dependency reference to a block that does
// not exist in the current list.
type MissingDependency struct {
	BlockID   string // Block declaring the dependency
	DependsOn string // Referenced ID that was not found
	Kind      block.EdgeKind
}

// Conflict records a conflicts declaration where both blocks are enabled.
type Conflict struct {
	BlockID       string
	ConflictsWith string
}

// Result is the outcome of resolving a block list.
type Result struct {
	Cycles    []block.Cycle
	Missing   []MissingDependency
	Conflicts []Conflict
}

// HasIssues reports whether any cycles, missing dependencies, or conflicts
// were found.
func (r Result) HasIssues() bool {
	return len(r.Cycles) > 0 || len(r.Missing) > 0 || len(r.Conflicts) > 0
}

// Resolve analyzes the block list and returns all detected issues.
// An empty list yields an empty result.
func Resolve(blocks []block.Block) Result {
	known := make(map[string]block.Block, len(blocks))
	for _, b := range blocks {
		known[b.ID] = b
	}

	var res Result
	res.Missing = findMissing(blocks, known)
	res.Conflicts = findConflicts(blocks, known)
	res.Cycles = findCycles(blocks, known)
	return res
}

// CycleNodeSet flattens cycle paths into a membership set for highlighting.
func CycleNodeSet(cycles []block.Cycle) map[string]bool {
	set := make(map[string]bool)
	for _, c := range cycles {
		for _, id := range c.Path {
			set[id] = true
		}
	}
	return set
}

func findMissing(blocks []block.Block, known map[string]block.Block) []MissingDependency {
	var missing []MissingDependency
	check := func(b block.Block, targets []string, kind block.EdgeKind) {
		for _, t := range targets {
			if _, ok := known[t]; !ok {
				missing = append(missing, MissingDependency{BlockID: b.ID, DependsOn: t, Kind: kind})
			}
		}
	}
	for _, b := range blocks {
		check(b, b.Requires, block.EdgeRequires)
		check(b, b.Enables, block.EdgeEnables)
		check(b, b.Modifies, block.EdgeModifies)
		check(b, b.Conflicts, block.EdgeConflicts)
	}
	return missing
}

func findConflicts(blocks []block.Block, known map[string]block.Block) []Conflict {
	var conflicts []Conflict
	for _, b := range blocks {
		if !b.Enabled {
			continue
		}
		for _, other := range b.Conflicts {
			o, ok := known[other]
			if ok && o.Enabled {
				conflicts = append(conflicts, Conflict{BlockID: b.ID, ConflictsWith: other})
			}
		}
	}
	return conflicts
}

// findCycles detects cycles in the requires subgraph using depth-first
// search with white/gray/black coloring. When a back edge to a gray node
// is found, the gray stack from that node to the current one is the cycle
// path. Each cycle is reported once, keyed by its entry node.
func findCycles(blocks []block.Block, known map[string]block.Block) []block.Cycle {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(blocks))
	var stack []string
	var cycles []block.Cycle

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		stack = append(stack, id)
		for _, child := range known[id].Requires {
			if _, ok := known[child]; !ok {
				continue // reported as missing, not a cycle participant
			}
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				cycles = append(cycles, block.Cycle{Path: extractCycle(stack, child)})
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
	}

	// Iterate in input order so repeated resolves report cycles identically.
	for _, b := range blocks {
		if color[b.ID] == white {
			dfs(b.ID)
		}
	}
	return cycles
}

// extractCycle copies the tail of the gray stack starting at entry.
func extractCycle(stack []string, entry string) []string {
	start := 0
	for i, id := range stack {
		if id == entry {
			start = i
			break
		}
	}
	path := make([]string, len(stack)-start)
	copy(path, stack[start:])
	return path
}

// SortMissing orders missing dependencies for stable report output.
func SortMissing(missing []MissingDependency) {
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].BlockID != missing[j].BlockID {
			return missing[i].BlockID < missing[j].BlockID
		}
		return missing[i].DependsOn < missing[j].DependsOn
	})
}
