// Package layout assigns positions to graph nodes using a deterministic
// layered algorithm keyed by block category.
//
// Categories form columns in the fixed order core, feature, presentation,
// bonus. Empty categories contribute no column and consume no horizontal
// gap, so column positions depend only on the sequence of non-empty
// categories encountered so far. Given the same node list, output
// positions are bit-identical. No overlap avoidance or crossing
// minimization is performed.
package layout

import (
	"github.com/blockscope/blockscope/pkg/block"
)

// Layout constants, in world units.
const (
	// LeftMargin is the x position of the first non-empty column.
	LeftMargin = 50.0
	// TopMargin is the y position of the first node in each column.
	TopMargin = 50.0
	// VerticalSpacing separates nodes within a column.
	VerticalSpacing = 100.0
	// HorizontalSpacing separates consecutive non-empty columns.
	HorizontalSpacing = 180.0

	// NodeWidth and NodeHeight are the fixed node box dimensions,
	// shared by rendering and hit-testing.
	NodeWidth  = 140.0
	NodeHeight = 60.0
)

// PositionMap maps node IDs to world positions (the node's top-left
// corner). Nodes absent from the map are never drawn.
type PositionMap map[string]Point

// Layout computes a position for every node. Nodes are bucketed by
// category preserving input order, then placed in one column per
// non-empty category.
func Layout(nodes []block.Block) PositionMap {
	buckets := make(map[block.Category][]block.Block, len(block.CategoryOrder))
	for _, n := range nodes {
		buckets[n.Category] = append(buckets[n.Category], n)
	}

	positions := make(PositionMap, len(nodes))
	x := LeftMargin
	for _, cat := range block.CategoryOrder {
		col := buckets[cat]
		if len(col) == 0 {
			continue
		}
		y := TopMargin
		for _, n := range col {
			positions[n.ID] = Point{X: x, Y: y}
			y += VerticalSpacing
		}
		x += HorizontalSpacing
	}
	return positions
}

// NodeRect returns the world-space bounding rectangle for a node at pos.
func NodeRect(pos Point) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: NodeWidth, H: NodeHeight}
}
