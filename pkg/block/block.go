// Package block defines the domain model for blockscope: configurable
// blocks, their categories, and the dependency edges between them.
//
// A Block is a unit in the authoring tool whose dependency relationships
// are visualized as a node. The graph core only reads ID, Name, Category
// and Enabled; the declared dependency lists (Requires, Enables, Modifies,
// Conflicts) are consumed by the resolver to build edges.
package block

import (
	"fmt"
)

// =============================================================================
// Category
// =============================================================================

// Category groups blocks into one of four fixed buckets. The category
// determines the layout column order and the node's default color.
type Category string

// The four block categories, in their fixed layout order.
const (
	CategoryCore         Category = "core"
	CategoryFeature      Category = "feature"
	CategoryPresentation Category = "presentation"
	CategoryBonus        Category = "bonus"
)

// CategoryOrder is the fixed left-to-right column order for layout.
var CategoryOrder = []Category{
	CategoryCore,
	CategoryFeature,
	CategoryPresentation,
	CategoryBonus,
}

// ParseCategory converts a string into a Category.
// Returns an error for unknown values.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryCore, CategoryFeature, CategoryPresentation, CategoryBonus:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Display returns the human-readable name for the category.
func (c Category) Display() string {
	switch c {
	case CategoryCore:
		return "Core"
	case CategoryFeature:
		return "Feature"
	case CategoryPresentation:
		return "Presentation"
	case CategoryBonus:
		return "Bonus"
	}
	return string(c)
}

// =============================================================================
// Block
// =============================================================================

// Block is a configurable unit whose dependencies are visualized.
// Identity is ID; blocks are immutable for the lifetime of one graph
// snapshot and rebuilt in full when the underlying list changes.
type Block struct {
	ID       string   `toml:"id"`
	Name     string   `toml:"name"`
	Category Category `toml:"category"`
	Enabled  bool     `toml:"enabled"`

	// Declared dependency lists, by target block ID.
	Requires  []string `toml:"requires"`
	Enables   []string `toml:"enables"`
	Modifies  []string `toml:"modifies"`
	Conflicts []string `toml:"conflicts"`
}

// DisplayName returns the name if set, otherwise the ID.
func (b Block) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.ID
}

// =============================================================================
// Edge
// =============================================================================

// EdgeKind classifies a dependency edge.
type EdgeKind string

// Edge kinds. Requires edges form the cycle-relevant subgraph.
const (
	EdgeRequires  EdgeKind = "requires"
	EdgeEnables   EdgeKind = "enables"
	EdgeModifies  EdgeKind = "modifies"
	EdgeConflicts EdgeKind = "conflicts"
)

// Edge is a directed dependency between two blocks. Multiple edges between
// the same pair are permitted and rendered independently.
type Edge struct {
	From string
	To   string
	Kind EdgeKind
}

// Cycle is an ordered sequence of block IDs forming a closed chain of
// requires edges. Membership, not order, drives highlighting.
type Cycle struct {
	Path []string
}

// Contains reports whether id is part of the cycle.
func (c Cycle) Contains(id string) bool {
	for _, p := range c.Path {
		if p == id {
			return true
		}
	}
	return false
}
