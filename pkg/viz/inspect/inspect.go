// Package inspect builds human-readable per-node summary text for
// tooltips and the inspector panel.
package inspect

import (
	"fmt"
	"strings"

	"github.com/blockscope/blockscope/pkg/block"
)

// Describe assembles the inspector text for one block, in fixed order:
// name, enabled status, category, an optional cycle warning, then
// "Depends on" (targets of outgoing requires edges) and "Required by"
// (sources of incoming requires edges). Sections with no entries are
// omitted entirely.
func Describe(b block.Block, cycleNodes map[string]bool, outgoing, incoming []block.Edge) string {
	var sb strings.Builder

	sb.WriteString(b.DisplayName())
	sb.WriteString("\n")

	status := "Disabled"
	if b.Enabled {
		status = "Enabled"
	}
	fmt.Fprintf(&sb, "Status: %s\n", status)
	fmt.Fprintf(&sb, "Category: %s\n", b.Category.Display())

	if cycleNodes[b.ID] {
		sb.WriteString("Warning: part of a dependency cycle\n")
	}

	if deps := requiresTargets(outgoing); len(deps) > 0 {
		sb.WriteString("Depends on:\n")
		for _, id := range deps {
			fmt.Fprintf(&sb, "  - %s\n", id)
		}
	}
	if dependents := requiresSources(incoming); len(dependents) > 0 {
		sb.WriteString("Required by:\n")
		for _, id := range dependents {
			fmt.Fprintf(&sb, "  - %s\n", id)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func requiresTargets(edges []block.Edge) []string {
	var ids []string
	for _, e := range edges {
		if e.Kind == block.EdgeRequires {
			ids = append(ids, e.To)
		}
	}
	return ids
}

func requiresSources(edges []block.Edge) []string {
	var ids []string
	for _, e := range edges {
		if e.Kind == block.EdgeRequires {
			ids = append(ids, e.From)
		}
	}
	return ids
}
